// Package envfile reads and rewrites line-oriented key=value environment
// files such as the marketplace .env file.
//
// Lines are handled verbatim: comments, blank lines and assignments whose key
// was not answered are written back exactly as they were read. Only lines
// whose key equals an answered key are replaced, and no lines are appended.
package envfile
