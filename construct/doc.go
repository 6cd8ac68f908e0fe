/*
   Copyright 2025 The DIRPX Authors

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

// Package construct turns untyped wire records into typed resources.
//
// Construction runs in two explicit phases. A Schema first hydrates a
// wire.Map into a Record: every declared field is looked up by its
// canonical name and either coerced into its declared shape or set to a
// fresh default. Undeclared keys are dropped. A Constructor then builds the
// typed value from the Record and applies the resource's own passes, which
// replace nested collections with typed sub-resources.
//
// Hydration is total: any map, including nil, produces a Record.
package construct
