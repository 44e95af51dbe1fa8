// Package portfolio turns the API collections into uniform entries the
// galleries can show, and provides filtering and sorting over them.
package portfolio

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/miosa/folio/client"
)

// Kind names one collection.
type Kind string

const (
	KindPublications Kind = "publications"
	KindAwards       Kind = "awards"
	KindConferences  Kind = "conferences"
	KindMedia        Kind = "media"
	KindCV           Kind = "cv"
)

var labels = map[Kind]string{
	KindPublications: "Publications",
	KindAwards:       "Awards",
	KindConferences:  "Talks",
	KindMedia:        "Media",
	KindCV:           "CV",
}

// Kinds returns the collections in display order.
func Kinds() []Kind {
	return []Kind{KindPublications, KindAwards, KindConferences, KindMedia, KindCV}
}

// Label is the tab title for k.
func (k Kind) Label() string {
	if l, ok := labels[k]; ok {
		return l
	}
	return string(k)
}

// ParseKind accepts a collection name case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := labels[k]; !ok {
		return "", fmt.Errorf("unknown collection %q", s)
	}
	return k, nil
}

// Entry is one card in a gallery.
type Entry struct {
	Key      string
	Kind     Kind
	Title    string
	Subtitle string
	Venue    string
	Year     int
	Date     string
	Tags     []string
	URL      string
	Summary  string
}

// ID is the stable key the gallery renders the entry under.
func (e Entry) ID() string { return string(e.Kind) + "/" + e.Key }

// -- Conversion ---------------------------------------------------------------

func FromPublications(pubs []client.Publication) []Entry {
	out := make([]Entry, 0, len(pubs))
	for i, p := range pubs {
		out = append(out, Entry{
			Key:      keyOr(p.ID, i),
			Kind:     KindPublications,
			Title:    p.Title,
			Subtitle: strings.Join(p.Authors, ", "),
			Venue:    p.Venue,
			Year:     p.Year,
			Tags:     p.Tags,
			URL:      firstNonEmpty(p.URL, doiURL(p.DOI)),
			Summary:  p.Abstract,
		})
	}
	return out
}

func FromAwards(awards []client.Award) []Entry {
	out := make([]Entry, 0, len(awards))
	for i, a := range awards {
		out = append(out, Entry{
			Key:     keyOr(a.ID, i),
			Kind:    KindAwards,
			Title:   a.Title,
			Venue:   a.Issuer,
			Year:    a.Year,
			URL:     a.URL,
			Summary: a.Description,
		})
	}
	return out
}

func FromConferences(confs []client.Conference) []Entry {
	out := make([]Entry, 0, len(confs))
	for i, c := range confs {
		out = append(out, Entry{
			Key:      keyOr(c.ID, i),
			Kind:     KindConferences,
			Title:    c.Title,
			Subtitle: c.Location,
			Venue:    c.Event,
			Year:     yearOr(c.Year, c.Date),
			Date:     c.Date,
			Tags:     c.Tags,
			URL:      c.URL,
			Summary:  c.Abstract,
		})
	}
	return out
}

func FromMedia(media []client.Media) []Entry {
	out := make([]Entry, 0, len(media))
	for i, m := range media {
		var tags []string
		if m.Kind != "" {
			tags = []string{m.Kind}
		}
		out = append(out, Entry{
			Key:     keyOr(m.ID, i),
			Kind:    KindMedia,
			Title:   m.Title,
			Venue:   m.Outlet,
			Year:    yearOr(m.Year, m.Date),
			Date:    m.Date,
			Tags:    tags,
			URL:     m.URL,
			Summary: m.Summary,
		})
	}
	return out
}

// FromCV flattens every CV section into entries; the section title becomes
// the venue so filtering by "education" works.
func FromCV(cv *client.CV) []Entry {
	if cv == nil {
		return nil
	}
	var out []Entry
	for si, sec := range cv.Sections {
		for ii, it := range sec.Items {
			out = append(out, Entry{
				Key:      fmt.Sprintf("%d-%d", si, ii),
				Kind:     KindCV,
				Title:    it.Title,
				Subtitle: it.Org,
				Venue:    sec.Title,
				Year:     yearOr(0, it.Period),
				Date:     it.Period,
				Summary:  it.Description,
			})
		}
	}
	return out
}

// FromCollections converts everything FetchAll returned.
func FromCollections(c *client.Collections) map[Kind][]Entry {
	if c == nil {
		return map[Kind][]Entry{}
	}
	return map[Kind][]Entry{
		KindPublications: FromPublications(c.Publications),
		KindAwards:       FromAwards(c.Awards),
		KindConferences:  FromConferences(c.Conferences),
		KindMedia:        FromMedia(c.Media),
		KindCV:           FromCV(c.CV),
	}
}

// -- Filter and sort ----------------------------------------------------------

// Filter keeps the entries whose title, subtitle, venue or tags contain query,
// ignoring case. An empty query keeps everything.
func Filter(entries []Entry, query string) []Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return entries
	}
	var out []Entry
	for _, e := range entries {
		if e.matches(q) {
			out = append(out, e)
		}
	}
	return out
}

func (e Entry) matches(q string) bool {
	for _, s := range []string{e.Title, e.Subtitle, e.Venue} {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	for _, t := range e.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

// SortBy selects the order of a collection.
type SortBy string

const (
	SortYear  SortBy = "year"  // newest first, then by title
	SortTitle SortBy = "title" // alphabetical
)

// ParseSort accepts "year" or "title"; empty means year.
func ParseSort(s string) (SortBy, error) {
	switch SortBy(strings.ToLower(strings.TrimSpace(s))) {
	case "", SortYear:
		return SortYear, nil
	case SortTitle:
		return SortTitle, nil
	}
	return "", fmt.Errorf("unknown sort %q (want year or title)", s)
}

// Next cycles to the other sort order.
func (s SortBy) Next() SortBy {
	if s == SortTitle {
		return SortYear
	}
	return SortTitle
}

// Sort returns a sorted copy of entries. Ties keep their input order.
func Sort(entries []Entry, by SortBy) []Entry {
	out := slices.Clone(entries)
	byTitle := func(a, b Entry) int {
		return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	}
	switch by {
	case SortTitle:
		slices.SortStableFunc(out, byTitle)
	default:
		slices.SortStableFunc(out, func(a, b Entry) int {
			if a.Year != b.Year {
				return b.Year - a.Year
			}
			return byTitle(a, b)
		})
	}
	return out
}

// -- helpers --

var yearRe = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// yearOr returns year when set, otherwise the last four-digit year found in
// text ("2019 - 2023" yields 2023).
func yearOr(year int, text string) int {
	if year != 0 {
		return year
	}
	all := yearRe.FindAllString(text, -1)
	if len(all) == 0 {
		return 0
	}
	y, _ := strconv.Atoi(all[len(all)-1])
	return y
}

func keyOr(id string, i int) string {
	if id != "" {
		return id
	}
	return "idx-" + strconv.Itoa(i)
}

func doiURL(doi string) string {
	if doi == "" {
		return ""
	}
	return "https://doi.org/" + doi
}

func firstNonEmpty(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}
	return ""
}
