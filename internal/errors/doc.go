// Package errors provides the structured error type shared by the dnd-tools packages.
//
// Errors carry a code, a user-facing message, an optional cause and free-form
// metadata. The CLI maps codes to process exit statuses with Code.ExitCode.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFoundf("weapon %s not found", name)
//	err := errors.InvalidArgumentf("invalid smite level: %d", level)
//
// Adding metadata:
//
//	err := errors.NotFound("weapon not found").
//	    WithMeta("weapon_name", name).
//	    WithMeta("character", character)
//
// Wrapping errors:
//
//	if err := decoder.Decode(&doc); err != nil {
//	    return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode catalog")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // unknown weapon or character
//	}
//
//	code := errors.GetCode(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("weapon_name", input.WeaponName, vb)
//	errors.ValidateRange("smite_level", input.SmiteLevel, 0, 3, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Error Codes
//
//   - InvalidArgument: caller supplied bad input or a malformed catalog
//   - NotFound: unknown character or weapon
//   - Internal: broken invariant, such as merging damage of different types
package errors
