// Package parser translates raw input lines into validated commands.
package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/runoshun/duke/internal/domain"
)

// Error messages. These are shown to users verbatim.
const (
	msgUnknownCommand   = "No such command, please try again with another command."
	msgToDoEmpty        = "Description of ToDo cannot be empty"
	msgDeadlineEmpty    = "The details of a Deadline cannot be empty."
	msgDeadlineParts    = "Description and date/time must be given for a Deadline."
	msgDeadlineDate     = "Date time format is incorrect, try to follow the format of dd-mm-yyyy hAM/PM."
	msgEventEmpty       = "The details of a Event cannot be empty."
	msgEventParts       = "Description, start datetime, and end datetime must be given for an Event."
	msgEventDate        = "Start or end date has incorrect format, try to follow the format of dd-mm-yyyy hAM/PM."
	msgDoneNumber       = "Please provide an actual number for the task you are done with."
	msgDeleteNumber     = "Please provide an actual number for the task you are deleting."
	msgSeparatorInDesc  = `Description cannot contain "|".`
	msgLineBreak        = "Commands must fit on a single line."
	msgInvalidCalendarF = "%s is not a valid calendar date."
)

const (
	byToken    = "/by"
	startToken = "/start"
	endToken   = "/end"
)

var (
	bySeparator    = " " + byToken + " "
	startSeparator = " " + startToken + " "
	endSeparator   = " " + endToken + " "
	eventSeparator = regexp.MustCompile(" " + startToken + " | " + endToken + " ")
	indexPattern   = regexp.MustCompile(`^-?(0|[1-9][0-9]*)$`)
)

// keyword binds a prefix keyword to its parameter parser.
type keyword struct {
	parse func(params string) (domain.Command, error)
	name  string
}

// prefixKeywords are checked in order; the first keyword the line starts with wins.
var prefixKeywords = []keyword{
	{name: string(domain.KindToDo), parse: parseToDo},
	{name: string(domain.KindDeadline), parse: parseDeadline},
	{name: string(domain.KindEvent), parse: parseEvent},
	{name: string(domain.KindDone), parse: parseDone},
	{name: string(domain.KindDelete), parse: parseDelete},
}

// Parse translates a single input line into a Command.
// Matching is case-sensitive. Failures are returned as *domain.ParseError.
func Parse(line string) (domain.Command, error) {
	if strings.ContainsAny(line, "\r\n") {
		return nil, &domain.ParseError{
			Err:     domain.ErrLineBreak,
			Params:  line,
			Message: msgLineBreak,
		}
	}

	if kw, params, ok := tokenize(line); ok {
		return kw.parse(params)
	}

	switch line {
	case string(domain.KindList):
		return domain.ListCommand{}, nil
	case string(domain.KindExit):
		return domain.ExitCommand{}, nil
	}

	return nil, &domain.ParseError{
		Err:     domain.ErrUnknownCommand,
		Params:  line,
		Message: msgUnknownCommand,
	}
}

// tokenize splits line into its prefix keyword and the parameter text with
// leading whitespace removed.
func tokenize(line string) (keyword, string, bool) {
	for _, kw := range prefixKeywords {
		if rest, ok := strings.CutPrefix(line, kw.name); ok {
			return kw, strings.TrimLeftFunc(rest, unicode.IsSpace), true
		}
	}
	return keyword{}, "", false
}

func parseToDo(params string) (domain.Command, error) {
	if params == "" {
		return nil, newParseError(domain.KindToDo, params, msgToDoEmpty, domain.ErrEmptyDescription)
	}
	if err := checkDescription(domain.KindToDo, params, params); err != nil {
		return nil, err
	}
	return domain.ToDoCommand{Description: params}, nil
}

func parseDeadline(params string) (domain.Command, error) {
	if params == "" {
		return nil, newParseError(domain.KindDeadline, params, msgDeadlineEmpty, domain.ErrEmptyDescription)
	}

	parts := split(params, bySeparator)
	if !strings.Contains(params, byToken) || len(parts) != 2 {
		return nil, newParseError(domain.KindDeadline, params, msgDeadlineParts, domain.ErrInvalidParams)
	}
	if !domain.MatchesDateTime(parts[1]) {
		return nil, newParseError(domain.KindDeadline, params, msgDeadlineDate, domain.ErrInvalidDateFormat)
	}

	due, err := parseDate(domain.KindDeadline, params, parts[1])
	if err != nil {
		return nil, err
	}
	if err := checkDescription(domain.KindDeadline, params, parts[0]); err != nil {
		return nil, err
	}

	return domain.DeadlineCommand{Description: parts[0], Due: due, Params: params}, nil
}

func parseEvent(params string) (domain.Command, error) {
	if params == "" {
		return nil, newParseError(domain.KindEvent, params, msgEventEmpty, domain.ErrEmptyDescription)
	}

	parts, seps := splitEvent(params)
	if !strings.Contains(params, startToken) || !strings.Contains(params, endToken) ||
		len(parts) != 3 || seps[0] != startSeparator || seps[1] != endSeparator {
		return nil, newParseError(domain.KindEvent, params, msgEventParts, domain.ErrInvalidParams)
	}
	if !domain.MatchesDateTime(parts[1]) || !domain.MatchesDateTime(parts[2]) {
		return nil, newParseError(domain.KindEvent, params, msgEventDate, domain.ErrInvalidDateFormat)
	}

	start, err := parseDate(domain.KindEvent, params, parts[1])
	if err != nil {
		return nil, err
	}
	end, err := parseDate(domain.KindEvent, params, parts[2])
	if err != nil {
		return nil, err
	}
	if err := checkDescription(domain.KindEvent, params, parts[0]); err != nil {
		return nil, err
	}

	return domain.EventCommand{Description: parts[0], Start: start, End: end, Params: params}, nil
}

func parseDone(params string) (domain.Command, error) {
	index, err := parseIndex(params)
	if err != nil {
		return nil, newParseError(domain.KindDone, params, msgDoneNumber, err)
	}
	return domain.DoneCommand{Index: index, Params: params}, nil
}

func parseDelete(params string) (domain.Command, error) {
	index, err := parseIndex(params)
	if err != nil {
		return nil, newParseError(domain.KindDelete, params, msgDeleteNumber, err)
	}
	return domain.DeleteCommand{Index: index, Params: params}, nil
}

// parseIndex converts a 1-based integer literal into a zero-based index.
// Negative and out-of-range values are accepted; the task list rejects them.
func parseIndex(params string) (int, error) {
	if !indexPattern.MatchString(params) {
		return 0, domain.ErrInvalidParams
	}
	n, err := strconv.Atoi(params)
	if err != nil {
		return 0, domain.ErrInvalidParams
	}
	return n - 1, nil
}

// parseDate converts a grammar-valid date-time, failing on impossible calendar dates.
func parseDate(kind domain.Kind, params, value string) (time.Time, error) {
	t, err := domain.ParseDateTime(value)
	if err != nil {
		return time.Time{}, newParseError(kind, params, fmt.Sprintf(msgInvalidCalendarF, value), err)
	}
	return t, nil
}

// checkDescription rejects descriptions that would corrupt the storage format.
func checkDescription(kind domain.Kind, params, desc string) error {
	if errors.Is(domain.ValidateDescription(desc), domain.ErrSeparatorInDescription) {
		return newParseError(kind, params, msgSeparatorInDesc, domain.ErrSeparatorInDescription)
	}
	return nil
}

// split splits s around sep and drops trailing empty parts.
func split(s, sep string) []string {
	return trimTrailingEmpty(strings.Split(s, sep))
}

// splitEvent splits s around the /start and /end separators, returning the
// parts (trailing empty parts dropped) and the separators in the order found.
func splitEvent(s string) ([]string, []string) {
	locs := eventSeparator.FindAllStringIndex(s, -1)
	parts := make([]string, 0, len(locs)+1)
	seps := make([]string, 0, len(locs))
	prev := 0
	for _, loc := range locs {
		parts = append(parts, s[prev:loc[0]])
		seps = append(seps, s[loc[0]:loc[1]])
		prev = loc[1]
	}
	parts = append(parts, s[prev:])
	return trimTrailingEmpty(parts), seps
}

func trimTrailingEmpty(parts []string) []string {
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

func newParseError(kind domain.Kind, params, msg string, err error) *domain.ParseError {
	return &domain.ParseError{Err: err, Kind: kind, Params: params, Message: msg}
}
