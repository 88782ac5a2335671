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

// Package apis defines the contracts between the errata core and the
// transport adapters (httpx, grpcx).
//
// It intentionally contains no behavior of its own: just the Mapper interface
// that resolves an aggregate severity into transport statuses, the ErrorView
// snapshot shape, and the small capability interfaces that let adapters work
// with any error type that can speak "severity" and "notes" without importing
// the concrete errata package.
package apis
