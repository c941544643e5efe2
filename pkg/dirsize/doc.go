// Package dirsize lists the direct children of a directory together with
// their aggregated sizes.
//
// Files report their own byte length. Directories report the sum of all
// regular files found by a recursive walk; nested directories are not
// reported individually. Paths that cannot be read during a walk are skipped
// and returned in Result.Skipped instead of aborting the scan.
package dirsize
