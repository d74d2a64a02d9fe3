package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = `
#ifdef XK_LATIN1
#define XK_ssharp                        0x00df  /* U+00DF LATIN SMALL LETTER SHARP S */
#define XK_Eth                           0x00d0  /* deprecated */
#define XK_KP_Space                      0xff80  /*(U+0020 SPACE)*/
#define XK_Greek_OMEGA                   0x07d9  /* U+03A9 GREEK CAPITAL LETTER OMEGA */
#endif /* XK_LATIN1 */
#define XF86XK_MonBrightnessUp   0x1008FF02  /* Monitor/panel brightness */
#define XF86XK_BrightnessAuto		_EVDEVK(0x0F4)		/* v3.16 KEY_BRIGHTNESS_AUTO */
#define _EVDEVK(_v) (0x10081000 + _v)
`

func TestParse(t *testing.T) {
	syms, err := parse(strings.NewReader(header))
	require.NoError(t, err)
	assert.Equal(t, []Keysym{
		{Name: "ssharp", Value: 0xdf, Rune: 0xdf},
		{Name: "Eth", Value: 0xd0},
		{Name: "KP_Space", Value: 0xff80},
		{Name: "Greek_OMEGA", Value: 0x7d9, Rune: 0x3a9},
		{Name: "XF86MonBrightnessUp", Value: 0x1008ff02},
		{Name: "XF86BrightnessAuto", Value: 0x100810f4},
	}, syms)
}

func TestGenerate(t *testing.T) {
	ctx := Context{
		Package: "xkb",
		Sources: []string{"keysymdef.h"},
		Keysyms: []Keysym{
			{Name: "ssharp", Value: 0xdf, Rune: 0xdf},
			{Name: "Escape", Value: 0xff1b},
		},
	}
	src, err := ctx.generate()
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, "// Code generated by keysymgen from keysymdef.h. DO NOT EDIT.\n")
	assert.Contains(t, out, "package xkb\n")
	assert.Contains(t, out, "\t{\"ssharp\", 0xdf, 0xdf},\n")
	assert.Contains(t, out, "\t{\"Escape\", 0xff1b, 0x0},\n")
}
