package assets

import "errors"

// Sentinel errors for asset resolution and path validation.
var (
	// ErrAssetNotFound indicates no bundled asset exists for the
	// requested variant/resolution combination.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrInvalidAssetDir indicates the configured asset directory is
	// not a valid, readable directory.
	ErrInvalidAssetDir = errors.New("invalid asset directory")

	// ErrPathTraversal indicates an attempt to access files outside the
	// configured sandbox root.
	ErrPathTraversal = errors.New("path escapes sandbox root")

	// ErrPathUnstable indicates the path resolved differently across two
	// consecutive normalizations (symlink churn during validation).
	ErrPathUnstable = errors.New("path resolution unstable")

	// ErrNotRegularFile indicates the target is missing, unreadable, or
	// not a regular file.
	ErrNotRegularFile = errors.New("not a regular readable file")

	// ErrFileTooLarge indicates the target exceeds the size bound.
	ErrFileTooLarge = errors.New("file exceeds size limit")

	// ErrUnknownSignature indicates the file's leading bytes match no
	// supported image signature.
	ErrUnknownSignature = errors.New("unrecognized image signature")
)
