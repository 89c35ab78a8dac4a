// Package writers holds helpers shared by everything that streams records to
// stdout or a file.
package writers
