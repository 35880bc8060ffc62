// SPDX-License-Identifier: EPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	UnknownZoneId Id = iota + 1
	AmbiguousTimeId
	NonexistentTimeId
	MalformedTimestampId
	NaiveTimestampId
	InvalidEpochId
	ConfigLoadFailedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // must never be empty, because we need to have docs about all issue types
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	unknownZoneIssue = &Issue{
		id: UnknownZoneId,
		mdMsg: `
# Unknown time zone

The zone identifier was not found in the IANA time-zone database.

## Things to check:
- Identifiers are case-sensitive: "Europe/Rome", not "europe/rome".
- Use the full Area/Location form:
~~~
$ tzkit parse "2023-06-01T10:00:00" --zone Europe/Rome
~~~
- Abbreviations like "CET" or "PST" are not zone identifiers; they are
  ambiguous display names and are deliberately not accepted.`,
		docLinks: []HttpLink{"https://en.wikipedia.org/wiki/List_of_tz_database_time_zones"},
		extLinks: []HttpLink{"https://www.iana.org/time-zones"},
	}

	ambiguousTimeIssue = &Issue{
		id: AmbiguousTimeId,
		mdMsg: `
# Ambiguous local time

On the requested zone this wall-clock time occurs **twice**: at the end of
daylight saving time the clock is set back one hour, so every time in the
fold maps to two different physical instants.

## Ways to resolve it:
- Name the instant you mean with an explicit UTC offset:
~~~
$ tzkit parse "2021-10-31T02:30:00+01:00"
~~~
- Or let tzkit pick a side and warn about the offset it assumed:
~~~
$ tzkit parse "2021-10-31T02:30:00" --zone Europe/Rome --allow-guess
~~~`,
		docLinks: []HttpLink{"https://en.wikipedia.org/wiki/Tz_database"},
		extLinks: []HttpLink{"https://www.iana.org/time-zones"},
	}

	nonexistentTimeIssue = &Issue{
		id: NonexistentTimeId,
		mdMsg: `
# Nonexistent local time

On the requested zone this wall-clock time never happened: at the start of
daylight saving time the clock jumps forward one hour, skipping this range
entirely. There is no physical instant to construct, so this failure cannot
be bypassed with --allow-guess.

## Ways to resolve it:
- Pick a wall-clock time outside the skipped hour.
- If the value came from arithmetic on local fields, redo the arithmetic on
  epoch seconds and convert back:
~~~
$ tzkit convert 1616895000 --zone Europe/Rome
~~~`,
		docLinks: []HttpLink{"https://en.wikipedia.org/wiki/Tz_database"},
		extLinks: []HttpLink{"https://www.iana.org/time-zones"},
	}

	malformedTimestampIssue = &Issue{
		id: MalformedTimestampId,
		mdMsg: `
# Malformed timestamp

The input matches none of the supported ISO-8601 forms.

## Supported forms (separator is "T" or a single space):
~~~
YYYY-MM-DDThh:mm:ssZ
YYYY-MM-DDThh:mm:ss.uuuuuuZ
YYYY-MM-DDThh:mm:ss+HH:MM
YYYY-MM-DDThh:mm:ss.uuuuuu-HH:MM
YYYY-MM-DDThh:mm:ss
~~~`,
		docLinks: []HttpLink{"https://www.w3.org/TR/NOTE-datetime"},
	}

	naiveTimestampIssue = &Issue{
		id: NaiveTimestampId,
		mdMsg: `
# Naive timestamp

The input carries no zone or offset, so it does not name a physical instant
and cannot be converted to epoch seconds or projected between zones.

## Ways to resolve it:
- Localize it onto a zone at parse time:
~~~
$ tzkit parse "2023-06-01T10:00:00" --zone Europe/Rome
~~~
- Or set a default zone once:
~~~
$ tzkit config init
~~~
  and edit default_zone in the written file.`,
		docLinks: []HttpLink{"https://en.wikipedia.org/wiki/ISO_8601"},
	}

	invalidEpochIssue = &Issue{
		id: InvalidEpochId,
		mdMsg: `
# Invalid epoch value

The argument is neither a supported timestamp nor a number of epoch seconds.
Epoch seconds may be negative (before 1970) and fractional (microseconds):
~~~
$ tzkit convert 1685613600.5 --zone Asia/Tokyo
$ tzkit convert -- -3600
~~~`,
		docLinks: []HttpLink{"https://en.wikipedia.org/wiki/Unix_time"},
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Configuration could not be loaded

The config file exists but could not be read, or contains unknown keys or
invalid values. Unknown keys fail loudly so a typo cannot silently change
how datetimes are constructed.

## Things you can try:
- Show where the file lives:
~~~
$ tzkit config path
~~~
- Regenerate a known-good default after moving the broken file away:
~~~
$ tzkit config init
~~~`,
		docLinks: []HttpLink{"https://toml.io/en/"},
	}

	issues = map[Id]*Issue{
		UnknownZoneId:        unknownZoneIssue,
		AmbiguousTimeId:      ambiguousTimeIssue,
		NonexistentTimeId:    nonexistentTimeIssue,
		MalformedTimestampId: malformedTimestampIssue,
		NaiveTimestampId:     naiveTimestampIssue,
		InvalidEpochId:       invalidEpochIssue,
		ConfigLoadFailedId:   configLoadFailedIssue,
	}
)

// Get returns the catalog entry for an Id, or nil if none exists.
func Get(id Id) *Issue {
	return issues[id]
}

// All returns every catalog entry, ordered by Id.
func All() []*Issue {
	ids := maps.Keys(issues)
	slices.Sort(ids)
	result := make([]*Issue, 0, len(ids))
	for _, id := range ids {
		result = append(result, issues[id])
	}
	return result
}
