// Package mongostore implements coffeeshop.Storage on MongoDB.
//
// Collections keep the names of the original deployment: coffeeshops,
// reviews, user (profiles) and login (credentials). Reviews reference their
// shop and author by plain strings.
package mongostore
