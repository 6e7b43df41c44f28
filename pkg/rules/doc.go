// Package rules implements the checks run against every pack.
//
// There are three independent checks:
//
//   - naming: the pack name must read as a display name. It may not
//     contain an underscore, an exclamation mark or a double space, and it
//     must start with an uppercase character.
//   - required files: every configured file (meta.json and Splash.png by
//     default) must exist in the pack. Each missing file is its own issue.
//   - metadata: when the metadata file exists it must parse as a JSON
//     object, carry every required field, and every URL field present must
//     hold an absolute URL. A parse failure skips the field checks.
//
// Checks only read through types.FS and report through types.PackResult;
// nothing in this package returns an error for a bad pack.
package rules
