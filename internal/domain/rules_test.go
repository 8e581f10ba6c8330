package domain

import (
	"testing"

	m "github.com/getcord/importfix/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultRuleSet(t *testing.T) *RuleSet {
	t.Helper()

	rs, err := NewRuleSet(DefaultRules(m.DefaultConfig().Rules)...)
	require.NoError(t, err)

	return rs
}

func TestRuleSet_DefaultRules(t *testing.T) {
	rs := defaultRuleSet(t)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "import equals require",
			in:   "import Ajv = require('ajv')",
			want: "import Ajv from 'ajv'",
		},
		{
			name: "import equals require with double quotes and semicolon",
			in:   `import addFormats = require("ajv-formats");`,
			want: `import addFormats from "ajv-formats";`,
		},
		{
			name: "import equals require with mismatched quotes is kept",
			in:   `import x = require('x")`,
			want: `import x = require('x")`,
		},
		{
			name: "helper call goes through default export",
			in:   "const validate = Ajv(schema);",
			want: "const validate = Ajv.default(schema);",
		},
		{
			name: "helper call after new",
			in:   "const ajv = new Ajv({ allErrors: true });",
			want: "const ajv = new Ajv.default({ allErrors: true });",
		},
		{
			name: "helper at line start",
			in:   "addFormats(ajv);",
			want: "addFormats.default(ajv);",
		},
		{
			name: "member call with helper name is left alone",
			in:   "validator.isEmail(address)",
			want: "validator.isEmail(address)",
		},
		{
			name: "identifier containing helper name is left alone",
			in:   "myAjv(schema)",
			want: "myAjv(schema)",
		},
		{
			name: "nested helper calls",
			in:   "const v = Ajv(Ajv(schema));",
			want: "const v = Ajv.default(Ajv.default(schema));",
		},
		{
			name: "mail client call",
			in:   "  return await sgMail.send(msg);",
			want: "  return await sgMail.default.send(msg);",
		},
		{
			name: "mail client api key",
			in:   "sgMail.setApiKey(env.SENDGRID_API_KEY);",
			want: "sgMail.default.setApiKey(env.SENDGRID_API_KEY);",
		},
		{
			name: "markup function",
			in:   "const { html } = mjml2html(template);",
			want: "const { html } = mjml2html.default(template);",
		},
		{
			name: "dirname",
			in:   "const dir = path.join(__dirname, 'static');",
			want: "const dir = path.join(path.dirname(url.fileURLToPath(import.meta.url)), 'static');",
		},
		{
			name: "filename",
			in:   "log(__filename);",
			want: "log(url.fileURLToPath(import.meta.url));",
		},
		{
			name: "namespace import of listed module",
			in:   "import * as pg from 'pg';",
			want: "import pg from 'pg';",
		},
		{
			name: "namespace import of scoped module",
			in:   "import * as sgMail from '@sendgrid/mail';",
			want: "import sgMail from '@sendgrid/mail';",
		},
		{
			name: "namespace import with double quotes",
			in:   `import * as dayjs from "dayjs";`,
			want: `import dayjs from "dayjs";`,
		},
		{
			name: "namespace import with mismatched quotes is kept",
			in:   `import * as pg from 'pg";`,
			want: `import * as pg from 'pg";`,
		},
		{
			name: "namespace import of unlisted module is kept",
			in:   "import * as path from 'path';",
			want: "import * as path from 'path';",
		},
		{
			name: "namespace import of module sharing a prefix is kept",
			in:   "import * as pgp from 'pg-promise';",
			want: "import * as pgp from 'pg-promise';",
		},
		{
			name: "no match is identity",
			in:   "export const x = 1;",
			want: "export const x = 1;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rs.Apply(tt.in))
		})
	}
}

func TestRuleSet_Idempotent(t *testing.T) {
	rs := defaultRuleSet(t)

	for _, line := range []string{
		"import Ajv = require('ajv')",
		"const v = Ajv(schema); addFormats(v);",
		"isEmail(isURL(x))",
		"sgMail.send(a); sgMail.sendMultiple(b); mjml2html(c);",
		"fs.readFileSync(path.join(__dirname, __filename))",
		"import * as jwt from 'jsonwebtoken';",
	} {
		once := rs.Apply(line)
		assert.Equalf(t, once, rs.Apply(once), "second pass changed %q", line)
	}
}

func TestRuleSet_RulesSeePreviousOutput(t *testing.T) {
	rs, err := NewRuleSet(
		m.Literal("first", "a", "b"),
		m.Literal("second", "b", "c"),
	)
	require.NoError(t, err)

	assert.Equal(t, "cc", rs.Apply("ab"))
	assert.Equal(t, 2, rs.Len())
}

func TestNewRuleSet_Errors(t *testing.T) {
	tests := []struct {
		name string
		rule m.RewriteRule
	}{
		{name: "invalid pattern", rule: m.Pattern("bad", "(", "")},
		{name: "empty literal", rule: m.Literal("empty", "", "x")},
		{name: "unknown kind", rule: m.RewriteRule{Name: "odd", Kind: "glob", Match: "*"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRuleSet(tt.rule)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.rule.Name)
		})
	}
}

func TestMustRuleSet_Panics(t *testing.T) {
	assert.Panics(t, func() { MustRuleSet(m.Pattern("bad", "[", "")) })
	assert.NotPanics(t, func() { MustRuleSet() })
}

func TestDefaultRules_EmptyListsSkipRules(t *testing.T) {
	rules := DefaultRules(m.RuleConfig{})

	names := make([]string, 0, len(rules))
	for _, r := range rules {
		names = append(names, r.Name)
	}

	assert.Equal(t, []string{"import-equals-require", "dirname", "filename"}, names)
}
