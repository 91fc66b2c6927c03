// Package fileutil lists the entries a listing is built from.
//
// ListNames reads one directory level and returns bare entry names, sorted,
// optionally filtered by extension, hidden prefix or entry type. Given a path
// to a regular file it returns that file's name, so a single file can be
// listed the same way as a directory.
//
// Basic listing:
//
//	names, err := fileutil.ListNames("/renders/shot_010", fileutil.ListOptions{
//	    IncludeHidden: true,
//	})
//
// Only EXR and DPX frames:
//
//	names, err := fileutil.ListNames(dir, fileutil.ListOptions{
//	    Extensions: []string{".exr", "dpx"},
//	    FilesOnly:  true,
//	})
//
// Fatal errors (missing path, permission denied) are returned wrapped; there
// is no partial result.
package fileutil
