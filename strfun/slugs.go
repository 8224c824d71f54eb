//-----------------------------------------------------------------------------
// Copyright (c) 2022-present Detlef Stern
//
// This file is part of mdast.
//
// mdast is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package strfun

import "strconv"

// Slugs hands out slugs that are unique within one document.
type Slugs struct {
	used map[string]struct{}
	next map[string]int // next numeric suffix to try for a slug
}

// NewSlugs creates an empty slug registry. Reserved slugs are never handed out.
func NewSlugs(reserved ...string) *Slugs {
	sl := &Slugs{used: make(map[string]struct{}, len(reserved)), next: map[string]int{}}
	for _, r := range reserved {
		sl.used[r] = struct{}{}
	}
	return sl
}

// Unique returns the slug of s. A slug that is already in use gets the
// smallest free numeric suffix. The result is empty, if s has no slug.
func (sl *Slugs) Unique(s string) string {
	slug := Slugify(s)
	if slug == "" {
		return ""
	}
	result := slug
	if sl.Has(result) {
		i := max(sl.next[slug], 1)
		for result = slug + "-" + strconv.Itoa(i); sl.Has(result); result = slug + "-" + strconv.Itoa(i) {
			i++
		}
		sl.next[slug] = i + 1
	}
	sl.used[result] = struct{}{}
	return result
}

// Has returns true, if the slug is reserved or was handed out.
func (sl *Slugs) Has(slug string) bool { _, found := sl.used[slug]; return found }
