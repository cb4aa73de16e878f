package colwriter_test

import (
	"strings"
	"testing"

	"github.com/bjaus/colwriter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithConfig(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		cfg  colwriter.Config
		want string
	}{
		"empty": {
			cfg:  colwriter.Config{},
			want: "a  b  c  \naa bb cc ",
		},
		"padding int": {
			cfg:  colwriter.Config{"padding": 2},
			want: "a   b   c   \naa  bb  cc  ",
		},
		"padding int64": {
			cfg:  colwriter.Config{"padding": int64(2)},
			want: "a   b   c   \naa  bb  cc  ",
		},
		"padding list": {
			cfg:  colwriter.Config{"padding": []any{0, 1, 2}},
			want: "a b  c   \naabb cc  ",
		},
		"alignment name": {
			cfg:  colwriter.Config{"alignment": "right"},
			want: "  a  b  c\n aa bb cc",
		},
		"alignment letters": {
			cfg:  colwriter.Config{"alignment": []string{"l", "c", "r"}},
			want: "a   b   c\naa bb  cc",
		},
		"alignment values": {
			cfg:  colwriter.Config{"alignment": colwriter.AlignRight},
			want: "  a  b  c\n aa bb cc",
		},
		"padchar": {
			cfg:  colwriter.Config{"padchar": "."},
			want: "a..b..c..\naa.bb.cc.",
		},
		"pad_char alias": {
			cfg:  colwriter.Config{"pad_char": []any{"-", "+"}},
			want: "a--b++c  \naa-bb+cc ",
		},
		"tabchar alias": {
			cfg:  colwriter.Config{"tabchar": "\t"},
			want: "a  b  c  \naa bb cc ",
		},
		"setting value": {
			cfg:  colwriter.Config{"padding": colwriter.PerColumn(0, 1, 2)},
			want: "a b  c   \naabb cc  ",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			w := newWriter(t, colwriter.WithConfig(tt.cfg))
			_, _ = w.WriteString(sample)
			assert.Equal(t, tt.want, render(t, w))
		})
	}
}

func TestWithConfigErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		cfg     colwriter.Config
		unknown bool
	}{
		"unknown key":        {cfg: colwriter.Config{"width": 10}, unknown: true},
		"padding text":       {cfg: colwriter.Config{"padding": "text"}},
		"padding negative":   {cfg: colwriter.Config{"padding": -1}},
		"padding bad list":   {cfg: colwriter.Config{"padding": []any{-1, 1}}},
		"padding float":      {cfg: colwriter.Config{"padding": 1.5}},
		"alignment unknown":  {cfg: colwriter.Config{"alignment": "t"}},
		"alignment number":   {cfg: colwriter.Config{"alignment": 0}},
		"alignment list":     {cfg: colwriter.Config{"alignment": []any{"t"}}},
		"padchar long":       {cfg: colwriter.Config{"padchar": "  "}},
		"padchar number":     {cfg: colwriter.Config{"padchar": 10}},
		"padchar list":       {cfg: colwriter.Config{"padchar": []any{"  ", " "}}},
		"delimiter empty":    {cfg: colwriter.Config{"delimiter": ""}},
		"delimiter not text": {cfg: colwriter.Config{"delimiter": 3}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := colwriter.New(colwriter.WithConfig(tt.cfg))
			require.ErrorIs(t, err, colwriter.ErrInvalidConfig)
			if tt.unknown {
				assert.ErrorIs(t, err, colwriter.ErrUnknownOption)
				assert.Contains(t, err.Error(), `"width"`)
			}
		})
	}
}

func TestLoadConfigYAML(t *testing.T) {
	t.Parallel()
	doc := `
padding: [0, 1, 2]
alignment: right
padchar: "."
delimiter: ","
`
	cfg, err := colwriter.LoadConfig(strings.NewReader(doc), colwriter.YAML)
	require.NoError(t, err)

	w := newWriter(t, colwriter.WithConfig(cfg))
	_, _ = w.WriteString("a,b,c\naa,bb,cc")
	assert.Equal(t, ".a..b...c\naa.bb..cc", render(t, w))
}

func TestLoadConfigTOML(t *testing.T) {
	t.Parallel()
	doc := `
padding = 2
alignment = ["left", "center", "right"]
tabchar = "\t"
`
	cfg, err := colwriter.LoadConfig(strings.NewReader(doc), colwriter.TOML)
	require.NoError(t, err)

	w := newWriter(t, colwriter.WithConfig(cfg))
	_, _ = w.WriteString(sample)
	assert.Equal(t, "a    b     c\naa   bb   cc", render(t, w))
}

func TestLoadConfigEmptyYAML(t *testing.T) {
	t.Parallel()
	cfg, err := colwriter.LoadConfig(strings.NewReader(""), colwriter.YAML)
	require.NoError(t, err)
	assert.Empty(t, cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		doc  string
		kind colwriter.ConfigKind
	}{
		"bad yaml":     {doc: "padding: [1, 2", kind: colwriter.YAML},
		"yaml list":    {doc: "- 1\n- 2\n", kind: colwriter.YAML},
		"bad toml":     {doc: "padding = ", kind: colwriter.TOML},
		"unknown kind": {doc: "{}", kind: colwriter.ConfigKind("json")},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := colwriter.LoadConfig(strings.NewReader(tt.doc), tt.kind)
			require.ErrorIs(t, err, colwriter.ErrInvalidConfig)
		})
	}
}

func TestLoadConfigUnknownKeyRejectedOnApply(t *testing.T) {
	t.Parallel()
	cfg, err := colwriter.LoadConfig(strings.NewReader("colour: red\n"), colwriter.YAML)
	require.NoError(t, err)
	_, err = colwriter.New(colwriter.WithConfig(cfg))
	require.ErrorIs(t, err, colwriter.ErrUnknownOption)
}

func TestConfigKindFromPath(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		path    string
		want    colwriter.ConfigKind
		wantErr require.ErrorAssertionFunc
	}{
		"yaml":      {path: "config.yaml", want: colwriter.YAML, wantErr: require.NoError},
		"yml":       {path: "/etc/colwriter/config.YML", want: colwriter.YAML, wantErr: require.NoError},
		"toml":      {path: "config.toml", want: colwriter.TOML, wantErr: require.NoError},
		"json":      {path: "config.json", want: "", wantErr: require.Error},
		"extension": {path: "config", want: "", wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := colwriter.ConfigKindFromPath(tt.path)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
