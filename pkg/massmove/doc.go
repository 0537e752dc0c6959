// Package massmove renames batches of files.
//
// A batch is described by two specifications of the form
// <directory>/<template>. The source template is a wildcard pattern matched
// against the file names of the source directory; the target template holds
// numbered placeholders (#1, #2, ...) bound to what the wildcards captured.
//
// Work happens in two phases. Plan lists the matching files, derives every
// destination and rejects the batch before any I/O if a destination is
// invalid, collides with another destination or already exists (unless
// overwriting is allowed). Execute then renames the files one at a time in
// name order. It is not transactional: the first failure stops the batch and
// files already moved stay moved.
package massmove
