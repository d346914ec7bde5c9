// Copyright 2025 The Mandarin Lyric Mind Authors
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


package lyricmind

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/garfieldra/Mandarin-Lyric-Mind/core"
	"github.com/garfieldra/Mandarin-Lyric-Mind/corpus"
)

// InferFilters derives metadata filters from a query by literal
// substring matching against the values present in the corpus. Each
// filter field is considered independently; candidate values are tried
// longest first and the first hit wins, so "张悬乐团" is preferred over
// "张悬" when both occur in the query. A query that mentions no known
// value yields an empty set.
func InferFilters(query string, c *corpus.Corpus) core.FilterSet {
	filters := core.FilterSet{}
	if c == nil || query == "" {
		return filters
	}

	for _, field := range core.FilterFields {
		values := c.FieldValues(field)
		// Longest candidate first. Stable, so corpus order breaks ties.
		sort.SliceStable(values, func(i, j int) bool {
			return utf8.RuneCountInString(values[i]) > utf8.RuneCountInString(values[j])
		})
		for _, value := range values {
			if strings.Contains(query, value) {
				filters[field] = value
				break
			}
		}
	}

	return filters
}
