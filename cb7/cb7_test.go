package cb7

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMulEncryptDecrypt(t *testing.T) {
	tests := []struct {
		encrypted, b, decrypted uint32
	}{
		{0x00000000, 0xa686d3b6, 0x00000000},
		{0x000e0000, 0xa686d3b6, 0xac620000},
		{0x0067bd20, 0x4fd931ff, 0x200802e0},
		{0x2ba0a76e, 0xa686d3b6, 0x24050002},
		{0x4adfd954, 0x4fd931ff, 0x9029beac},
		{0x7c016806, 0x2912dedd, 0x000000be},
		{0xa9422f21, 0xa686d3b6, 0x03d203e7},
		{0xfff576e0, 0xa686d3b6, 0x27bd0020},
	}

	require := require.New(t)
	for _, tt := range tests {
		require.Equal(tt.encrypted, mulEncrypt(tt.decrypted, tt.b))
		require.Equal(tt.decrypted, mulDecrypt(tt.encrypted, tt.b))
	}
}

func TestModInverse(t *testing.T) {
	tests := []struct{ x, inv uint32 }{
		{0x0d313243, 0x6c7b2a6b},
		{0x0efd8231, 0xd4c096d1},
		{0x2912dedd, 0xe09de975},
		{0x4fd931ff, 0x9a62cdff},
		{0x5a53abb5, 0x58f42a9d},
		{0x9ab2af6d, 0x1043b265},
		{0xa686d3b7, 0x57ed7a07},
		{0xec35a92f, 0xd2743dcf},
		{0x00000000, 0x00000000},
		{0x00000001, 0x00000001},
		{0xffffffff, 0xffffffff},
	}

	require := require.New(t)
	for _, tt := range tests {
		require.Equal(tt.inv, modInverse(tt.x))
	}
}

type codePair struct{ addr, val uint32 }

type codecScenario struct {
	name         string
	beefcodeAddr uint32
	beefcodeVal  uint32
	decrypted    []codePair
	encrypted    []codePair
}

func scenarios() []codecScenario {
	return []codecScenario{
		{
			name:         "default beefcode",
			beefcodeAddr: BeefcodeDE, beefcodeVal: 0x00000000,
			decrypted: []codePair{
				{0x9029BEAC, 0x0C0A9225},
				{0x201F6024, 0x00000000},
				{0x2096F5B8, 0x000000BE},
			},
			encrypted: []codePair{
				{0xD08F3A49, 0x00078A53},
				{0x3818DDE5, 0xE72B2B16},
				{0x973E0B2A, 0xA7D4AF10},
			},
		},
		{
			name:         "non-default beefcode",
			beefcodeAddr: BeefcodeDE, beefcodeVal: 0xDEADFACE,
			decrypted: []codePair{
				{0x9029BEAC, 0x0C0A9225},
				{0x201F6024, 0x00000000},
				{0x2096F5B8, 0x000000BE},
			},
			encrypted: []codePair{
				{0xE65B5422, 0xB12543CF},
				{0xD14F5E52, 0xFE26C9ED},
				{0xDD9BB6F0, 0xF5DF87F7},
			},
		},
		{
			name:         "two-line beefcode",
			beefcodeAddr: BeefcodeDF, beefcodeVal: 0xB16B00B5,
			decrypted: []codePair{
				{0x01234567, 0x89ABCDEF},
				{0x9029BEAC, 0x0C0A9225},
				{0x201F6024, 0x00000000},
				{0x2096F5B8, 0x000000BE},
			},
			encrypted: []codePair{
				{0x862316AB, 0xC59C5FB1},
				{0x06133B66, 0x95444FF1},
				{0x565FD08D, 0x9154AFF4},
				{0x4EF412FE, 0xD03E4E13},
			},
		},
		{
			name:         "inline beefcode and two-line beefcode",
			beefcodeAddr: BeefcodeDE, beefcodeVal: 0x00000000,
			decrypted: []codePair{
				{BeefcodeDF, 0xB16B00B5},
				{0x01234567, 0x89ABCDEF},
				{0x9029BEAC, 0x0C0A9225},
				{0x201F6024, 0x00000000},
				{0x2096F5B8, 0x000000BE},
			},
			encrypted: []codePair{
				{0xFE8B8601, 0xC7C6F6CE},
				{0x2195D855, 0x63FA11A7},
				{0x0CA31760, 0xA6F7E88A},
				{0x679DC392, 0xFA43E30B},
				{0x1CD9CCC3, 0x6AF74E36},
			},
		},
		{
			name:         "two default beefcodes in a row",
			beefcodeAddr: BeefcodeDE, beefcodeVal: 0x00000000,
			decrypted: []codePair{
				{BeefcodeDE, 0x00000000},
				{0x9029BEAC, 0x0C0A9225},
				{0x201F6024, 0x00000000},
				{0x2096F5B8, 0x000000BE},
			},
			encrypted: []codePair{
				{0x8787C575, 0x1AC4C1B4},
				{0x02210430, 0x184C16E8},
				{0x32E2A916, 0x7E6017BA},
				{0xCBB720FD, 0xD61505E0},
			},
		},
	}
}

func TestEncryptCode(t *testing.T) {
	require := require.New(t)
	for _, sc := range scenarios() {
		t.Run(sc.name, func(t *testing.T) {
			c := New()
			require.NoError(c.Rekey(sc.beefcodeAddr, sc.beefcodeVal))

			for i, code := range sc.decrypted {
				addr, val := c.EncryptCode(code.addr, code.val)
				require.Equal(sc.encrypted[i].addr, addr, "addr at index %d", i)
				require.Equal(sc.encrypted[i].val, val, "val at index %d", i)

				if IsBeefcode(code.addr) {
					require.NoError(c.Rekey(code.addr, code.val))
				}
			}
		})
	}
}

func TestDecryptCode(t *testing.T) {
	require := require.New(t)
	for _, sc := range scenarios() {
		t.Run(sc.name, func(t *testing.T) {
			c := New()
			require.NoError(c.Rekey(sc.beefcodeAddr, sc.beefcodeVal))

			for i, code := range sc.encrypted {
				addr, val := c.DecryptCode(code.addr, code.val)
				require.Equal(sc.decrypted[i].addr, addr, "addr at index %d", i)
				require.Equal(sc.decrypted[i].val, val, "val at index %d", i)

				if IsBeefcode(addr) {
					require.NoError(c.Rekey(addr, val))
				}
			}
		})
	}
}

func TestIsBeefcode(t *testing.T) {
	require := require.New(t)
	require.True(IsBeefcode(0xBEEFC0DE))
	require.True(IsBeefcode(0xBEEFC0DF))
	require.False(IsBeefcode(0x12345678))
}

func TestRekeyRejectsNonBeefcode(t *testing.T) {
	require := require.New(t)
	c := New()
	err := c.Rekey(0x12345678, 0)
	require.ErrorIs(err, ErrNotBeefcode)
}

func TestNewV7BootstrapsCanonicalSentinel(t *testing.T) {
	require := require.New(t)
	c := NewV7()
	addr, val := c.EncryptCode(0x2043AFCC, 0x2411FFFF)
	require.Equal(uint32(0x397951B0), addr)
	require.Equal(uint32(0x41569FE0), val)
}
