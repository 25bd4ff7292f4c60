// Package auth implements username/password authentication on top of bcrypt.
//
// The service never stores or logs plaintext passwords. Persistence is
// abstracted by PasswordStorage, which the application implements on its
// credential collection:
//
//	svc := auth.NewPasswordService(credentials,
//		auth.WithBcryptCost(cfg.BcryptCost),
//		auth.WithPasswordLogger(log),
//	)
//
//	if err := svc.Register(ctx, "alice", "secret"); errors.Is(err, auth.ErrUsernameTaken) {
//		// show "username is already taken"
//	}
//
//	if err := svc.Authenticate(ctx, "alice", "secret"); errors.Is(err, auth.ErrInvalidCredentials) {
//		// show the generic login failure
//	}
package auth
