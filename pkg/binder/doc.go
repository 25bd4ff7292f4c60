// Package binder decodes HTTP request data into Go structs.
//
// Each binder reads one source and only touches fields carrying its tag:
//
//	type EditReviewRequest struct {
//		ID      string `path:"id"`
//		Rating  string `form:"editRating"`
//		Comment string `form:"editComment"`
//	}
//
//	r.Post("/reviews/{id}/edit", handler.Wrap(edit,
//		handler.WithBinders[handler.Context, EditReviewRequest](
//			binder.Path(chi.URLParam),
//			binder.Form(),
//		),
//	))
//
// Supported field types are strings, signed and unsigned integers, floats,
// bools and pointers to those. Absent or empty values leave the field as is.
//
// Form returns ErrBinderNotApplicable for requests that carry no body so the
// same request type can serve a GET page and its POST submission.
package binder
