// Package errors provides coded errors for the rpg-sheet engine.
//
// Every error carries a Code, a user-facing message, an optional cause and
// optional metadata. The CLI turns the code into an exit status.
//
// # Basic Usage
//
//	err := errors.NotFoundf("item %s not found", id)
//	err := errors.InvalidArgument("import is missing hp").
//	    WithMeta("field", "hp")
//
// Wrapping keeps the code of a wrapped *Error and defaults to Internal for
// anything else:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save sheet")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//	os.Exit(errors.GetCode(err).ExitCode())
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateEnum("storage", cfg.Storage, []string{"sqlite", "redis"}, vb)
//	errors.ValidateRange("level", input.Level, 1, 20, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
