// Copyright 2025 Pantry Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package report

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/pantrylabs/foodsearch/core"
)

const maxSlugLength = 30

var (
	slugStripPattern    = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	slugCollapsePattern = regexp.MustCompile(`[-\s]+`)
)

// Filename derives the default report filename from the report's input string
// and timestamp: search_results_<slug>_<yyyymmdd_hhmmss>.json.
func Filename(r *core.Report) string {
	slug := slugStripPattern.ReplaceAllString(r.InputString, "")
	slug = strings.TrimSpace(slug)
	slug = slugCollapsePattern.ReplaceAllString(slug, "_")
	if runes := []rune(slug); len(runes) > maxSlugLength {
		slug = string(runes[:maxSlugLength])
	}
	if slug == "" {
		slug = "search"
	}
	return fmt.Sprintf("search_results_%s_%s.json", slug, r.Timestamp.Format("20060102_150405"))
}

// Save writes the report as JSON to path, or to a generated timestamped
// filename when path is empty. Returns the filename written.
func Save(r *core.Report, path string) (string, error) {
	if path == "" {
		path = Filename(r)
	}

	data, err := Marshal(r)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("saving report: %w", err)
	}
	return path, nil
}
