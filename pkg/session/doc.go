/*
Package session manages blend node instances for many characters.

A node instance is not safe for concurrent use. The Manager serializes every access to
one character behind a per-character lock, while different characters may be ticked in
parallel.
*/
package session
