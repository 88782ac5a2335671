/*
   Copyright 2025 The errata Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package severity defines the ordered diagnostic scale used by errata notes.
//
// The scale is, ascending:
//
//	DIAG < DEBUG < INFO < NOTE < WARNING < ERROR < FATAL < ALERT < EMERGENCY
//
// Severities are totally ordered and comparable with the usual operators; an
// errata trail aggregates the maximum severity across its notes. The textual
// names above are the canonical rendering and the canonical parse input.
//
// This package defines the canonical representation and the functions that
// convert arbitrary user input to that canonical form.
package severity
