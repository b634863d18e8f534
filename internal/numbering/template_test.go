package numbering_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lljaworski/invoicing/internal/entity"
	"github.com/lljaworski/invoicing/internal/numbering"
)

func TestValidateTemplate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		template string
		missing  []string
	}{
		{template: numbering.DefaultTemplate},
		{template: "{number:6}/{month}/{year}"},
		{template: "INV-{year}{month}-{number:3}"},
		{template: "FV/{year}/{number}", missing: []string{"{month}"}},
		{template: "FV/{month}/{number}", missing: []string{"{year}"}},
		{template: "FV/{year}/{month}", missing: []string{"{number}"}},
		{template: "FV/{year}/{month}/{number:x}", missing: []string{"{number}"}},
		{template: "", missing: []string{"{year}", "{month}", "{number}"}},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			t.Parallel()

			err := numbering.ValidateTemplate(tt.template)
			if tt.missing == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, entity.ErrInvalidTemplate)

			var te *numbering.TemplateError
			require.True(t, errors.As(err, &te))
			require.Equal(t, tt.missing, te.Missing)
		})
	}
}

func TestTemplate_Format(t *testing.T) {
	t.Parallel()

	tests := []struct {
		template string
		year     int
		month    int
		seq      int
		want     string
	}{
		{template: numbering.DefaultTemplate, year: 2024, month: 10, seq: 1, want: "FV/2024/10/0001"},
		{template: numbering.DefaultTemplate, year: 2024, month: 10, seq: 9999, want: "FV/2024/10/9999"},
		{template: numbering.DefaultTemplate, year: 2024, month: 10, seq: 10000, want: "FV/2024/10/10000"},
		{template: numbering.DefaultTemplate, year: 2025, month: 1, seq: 42, want: "FV/2025/01/0042"},
		{template: "{number:6}/{month}/{year}", year: 2024, month: 3, seq: 7, want: "000007/03/2024"},
		{template: "INV-{year}{month}-{number:2}", year: 2024, month: 12, seq: 5, want: "INV-202412-05"},
		{template: "{x}/{year}/{month}/{number}", year: 2024, month: 12, seq: 5, want: "{x}/2024/12/0005"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			tpl, err := numbering.ParseTemplate(tt.template)
			require.NoError(t, err)
			require.Equal(t, tt.want, tpl.Format(tt.year, tt.month, tt.seq))
		})
	}
}

func TestParseTemplate_Errors(t *testing.T) {
	t.Parallel()

	for _, s := range []string{
		"FV/{year}/{number}",
		"FV/{year}/{month}/{number:0}",
		"FV/{year}/{month}/{number:19}",
	} {
		_, err := numbering.ParseTemplate(s)
		require.ErrorIs(t, err, entity.ErrInvalidTemplate, s)
	}
}

func TestParseTemplate_MaxLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		maxLen   int
		wantErr  bool
	}{
		{name: "default", template: numbering.DefaultTemplate, maxLen: 15},
		{name: "at the limit", template: strings.Repeat("X", 30) + "/{year}/{month}/{number}", maxLen: 43},
		{name: "multibyte prefix counts characters", template: strings.Repeat("Ż", 30) + "/{year}/{month}/{number}", maxLen: 43},
		{name: "one over the limit", template: strings.Repeat("X", 31) + "/{year}/{month}/{number}", wantErr: true},
		{name: "long prefix", template: strings.Repeat("X", 45) + "/{year}/{month}/{number}", wantErr: true},
		{name: "wide number", template: strings.Repeat("X", 20) + "/{year}/{month}/{number:18}", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tpl, err := numbering.ParseTemplate(tt.template)
			if tt.wantErr {
				require.ErrorIs(t, err, entity.ErrInvalidTemplate)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.maxLen, tpl.MaxLen())
			require.LessOrEqual(t, tpl.MaxLen()+numbering.FallbackSuffixLen, entity.MaxNumberLen)
		})
	}
}

func TestTemplate_ParseRoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []string{
		numbering.DefaultTemplate,
		"{number:6}/{month}/{year}",
		"A.{year}.{month}.{number:3}(x)",
		"{a{year}-{month}-{number}",
	} {
		tpl, err := numbering.ParseTemplate(s)
		require.NoError(t, err, s)

		number := tpl.Format(2024, 7, 123)
		require.True(t, tpl.Match(number), number)

		got, ok := tpl.Parse(number)
		require.True(t, ok, number)
		require.Equal(t, numbering.Parsed{Year: 2024, Month: 7, Sequence: 123}, got)
	}
}

func TestTemplate_Match(t *testing.T) {
	t.Parallel()

	tpl, err := numbering.ParseTemplate(numbering.DefaultTemplate)
	require.NoError(t, err)

	tests := []struct {
		number string
		want   bool
	}{
		{number: "FV/2024/10/0001", want: true},
		// only the digit count is checked
		{number: "FV/2024/13/0001", want: true},
		{number: "FV/2024/00/0001", want: true},
		{number: "FV/2024/1/0001", want: false},
		{number: "FV/2024/10/001", want: false},
		{number: "FV/2024/10/00001", want: false},
		{number: "FV-2024-10-0001", want: false},
		{number: "xFV/2024/10/0001", want: false},
		{number: "FV/2024/10/0001-123456", want: false},
		{number: "", want: false},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, tpl.Match(tt.number), tt.number)
	}

	p, ok := tpl.Parse("FV/2024/13/0042")
	require.True(t, ok)
	require.Equal(t, numbering.Parsed{Year: 2024, Month: 13, Sequence: 42}, p)

	_, ok = tpl.Parse("FV/2024/10/abcd")
	require.False(t, ok)
}

func TestTemplate_Regexp(t *testing.T) {
	t.Parallel()

	tpl, err := numbering.ParseTemplate("FV.{year}+{month}/{number:6}")
	require.NoError(t, err)
	require.Equal(t, `^FV\.(\d{4})\+(\d{2})/(\d{6})$`, tpl.Regexp().String())
	require.Equal(t, 6, tpl.NumberWidth())
}
