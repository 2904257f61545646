// Package gitinfo answers "what changed" questions against a git
// repository: where the repository root is, which files were modified
// relative to the working tree or a commit list, and which line numbers
// of a file those modifications touched.
//
// Everything is recomputed per call by shelling out to git; there is no
// cache and no shared state, so results always reflect the repository
// at the moment of the query. Line numbers come from porcelain blame
// attribution, which makes them exact for the current checkout but
// subject to the usual blame caveats against historical commits (see
// [ModifiedLinesForPR]).
package gitinfo
