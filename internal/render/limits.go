// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package render

// In this file: host surface limits.

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Limits are the size limits of the host surface that the plan must fit in.
// All lengths are measured in runes.
type Limits struct {
	// InlineFieldLimit is the maximum length of a summary field value.
	InlineFieldLimit int `toml:"inline_field_limit" validate:"gte=1"`
	// FencedBlockSoftLimit is the rendered body length below which the
	// fenced block is sent alongside the summary fields.
	FencedBlockSoftLimit int `toml:"fenced_block_soft_limit" validate:"gte=0,ltefield=DescriptionHardLimit"`
	// DescriptionHardLimit is the maximum length of the secondary text block.
	DescriptionHardLimit int `toml:"description_hard_limit" validate:"gte=1"`
	// KeyLabelMaxLen is the maximum length of the field label, longer labels
	// are shortened with an ellipsis.
	KeyLabelMaxLen int `toml:"key_label_max_len" validate:"gte=4"`
	// MaxSummaryFields is the maximum number of top-level keys for which
	// the summary fields are generated.
	MaxSummaryFields int `toml:"max_summary_fields" validate:"gte=0,lte=100"`
	// TotalLimit is the combined budget of all summary fields and the body.
	TotalLimit int `toml:"total_limit" validate:"gtefield=DescriptionHardLimit"`
	// AttachmentMaxBytes is the maximum size of the file attachment.
	AttachmentMaxBytes int64 `toml:"attachment_max_bytes" validate:"gte=1"`
	// InlineOnly makes the planner prefer the inline fields and omit the body
	// when all top-level keys fit.
	InlineOnly bool `toml:"inline_only"`
	// Markup is the escaping applied by the host to the text.  The lengths
	// of the field values and the body are measured after escaping.
	Markup Markup `toml:"markup,omitempty" validate:"omitempty,oneof=mrkdwn"`
}

// Markup is the text markup of the host surface.
type Markup string

const (
	// MarkupNone is the plain text, no escaping.
	MarkupNone Markup = ""
	// MarkupMrkdwn is the Slack mrkdwn, where "&", "<" and ">" are sent
	// as HTML entities.
	MarkupMrkdwn Markup = "mrkdwn"
)

var mrkdwnEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// EscapeMrkdwn escapes the control characters of the Slack mrkdwn.
func EscapeMrkdwn(s string) string {
	return mrkdwnEscaper.Replace(s)
}

// Measure returns the length of s in runes as displayed by the host, after
// the markup escaping.
func (l Limits) Measure(s string) int {
	n := utf8.RuneCountInString(s)
	if l.Markup == MarkupMrkdwn {
		for _, r := range s {
			switch r {
			case '&':
				n += len("&amp;") - 1
			case '<', '>':
				n += len("&lt;") - 1
			}
		}
	}
	return n
}

// DefLimits are the generic chat limits: 1024 character fields, 2000
// character messages and 4096 character secondary blocks.
var DefLimits = Limits{
	InlineFieldLimit:     1024,
	FencedBlockSoftLimit: 1900,
	DescriptionHardLimit: 4096,
	KeyLabelMaxLen:       256,
	MaxSummaryFields:     20,
	TotalLimit:           6000,
	AttachmentMaxBytes:   8 << 20,
}

// SlackLimits are the limits of the Slack Block Kit: section field text is
// limited to 2000 characters, and section text to 3000.  The field text
// includes the bold label, which takes at most 5*KeyLabelMaxLen+3 characters
// once escaped.
var SlackLimits = Limits{
	InlineFieldLimit:     1750,
	FencedBlockSoftLimit: 1900,
	DescriptionHardLimit: 3000,
	KeyLabelMaxLen:       40,
	MaxSummaryFields:     20,
	TotalLimit:           12000,
	AttachmentMaxBytes:   1 << 30,
	Markup:               MarkupMrkdwn,
}

// TextLimits are used for the terminal and other surfaces that have no
// practical limits on the message size.
var TextLimits = Limits{
	InlineFieldLimit:     4096,
	FencedBlockSoftLimit: 1 << 20,
	DescriptionHardLimit: 1 << 20,
	KeyLabelMaxLen:       256,
	MaxSummaryFields:     50,
	TotalLimit:           4 << 20,
	AttachmentMaxBytes:   1 << 30,
}

var presets = map[string]Limits{
	"default": DefLimits,
	"slack":   SlackLimits,
	"text":    TextLimits,
}

// Preset returns the predefined limits for the named surface.
func Preset(name string) (Limits, bool) {
	l, ok := presets[strings.ToLower(name)]
	return l, ok
}

// Presets returns the sorted list of the preset names.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for k := range presets {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

var (
	validate *validator.Validate
	// LimitErrTranslations is the translator for the limits validation
	// errors.
	LimitErrTranslations ut.Translator
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	english := en.New()
	uni := ut.New(english, english)
	LimitErrTranslations, _ = uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, LimitErrTranslations); err != nil {
		panic(err)
	}
}

// Validate validates the limits.  The returned error is either nil or
// [validator.ValidationErrors].
func (l Limits) Validate() error {
	return validate.Struct(l)
}

// ErrLimitsInvalid is returned by LoadLimits if the limits fail validation.
var ErrLimitsInvalid = errors.New("limits validation failed")

// ValidationMessages returns human-readable validation messages for the err,
// if it is a validation error, otherwise it returns a single message with the
// error text.
func ValidationMessages(err error) []string {
	if err == nil {
		return nil
	}
	var vErr validator.ValidationErrors
	if !errors.As(err, &vErr) {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(vErr))
	for _, fe := range vErr {
		msgs = append(msgs, fe.Translate(LimitErrTranslations))
	}
	return msgs
}

// LoadLimits reads the TOML limits configuration from r.  The values that
// are not set in the file are taken from base.  Unknown keys are an error.
func LoadLimits(r io.Reader, base Limits) (Limits, error) {
	l := base
	md, err := toml.NewDecoder(r).Decode(&l)
	if err != nil {
		return Limits{}, err
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		keys := make([]string, len(undec))
		for i := range undec {
			keys[i] = undec[i].String()
		}
		return Limits{}, fmt.Errorf("unknown keys in limits configuration: %s", strings.Join(keys, ", "))
	}
	if err := l.Validate(); err != nil {
		return Limits{}, fmt.Errorf("%w: %s", ErrLimitsInvalid, strings.Join(ValidationMessages(err), "; "))
	}
	return l, nil
}

// WriteTOML writes the limits in TOML format to w.
func (l Limits) WriteTOML(w io.Writer) error {
	return toml.NewEncoder(w).Encode(l)
}
