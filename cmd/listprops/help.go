package main

import "github.com/simonhull/listprops"

const helpText = `listprops:
Lists the metadata properties of files.

Syntax: listprops [flags] [filenames]

Flags:
   -h  Show this help text (also -?).
   -c  Use canonical names. Display names are used by default.
   -b  Show both canonical and display names.
   -f  Show property flags: System, Innate, Purgeable, Viewable.
   -k  Include property keys as well as names.
   -l  Show the license.

Filenames:
   One or more filenames. The last element of each may contain the
   wildcards * ? and [...]; matching does not descend into subdirectories.

Environment:
   LISTPROPS_LOG_LEVEL  Diagnostics written to stderr: debug, info, warn, error.
   LISTPROPS_SCHEMA     Additional property description files (YAML).`

const licenseText = `BSD 3-Clause License

Copyright (c) The listprops Authors
All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
   list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
   this list of conditions and the following disclaimer in the documentation
   and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
   contributors may be used to endorse or promote products derived from
   this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.`

func versionLine() string {
	return "Version: " + listprops.GetVersionInfo().String()
}
