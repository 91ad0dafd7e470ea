/*
Package option implements optional values.

Optional values are used wherever a value may be left unspecified on
purpose, e.g. for features of sound patterns, where an unset feature acts
as a wildcard during matching.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package option
