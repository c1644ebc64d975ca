package main

import (
	"bytes"
	"testing"

	"github.com/MixinNetwork/rational/common"
	"github.com/MixinNetwork/rational/logger"
	"github.com/stretchr/testify/require"
)

func runApp(args ...string) (string, error) {
	var buf bytes.Buffer
	app := newApp()
	app.Writer = &buf
	app.ErrWriter = &buf
	err := app.Run(append([]string{"rat"}, args...))
	return buf.String(), err
}

func TestCommands(t *testing.T) {
	for _, tc := range []struct {
		args []string
		out  string
	}{
		{[]string{"reduce", "--value", "6/-4"}, "-3/2\n"},
		{[]string{"reduce", "--value", "0/-4"}, "0/1\n"},
		{[]string{"reciprocal", "--value", "6/4"}, "2/3\n"},
		{[]string{"add", "--x", "1/3", "--y", "1/6"}, "1/2\n"},
		{[]string{"sub", "--x", "1/3", "--y", "1/2"}, "-1/6\n"},
		{[]string{"mul", "--x", "2/3", "--y", "-3/4"}, "-1/2\n"},
		{[]string{"div", "--x", "1/2", "--y", "-3/4"}, "-2/3\n"},
		{[]string{"compare", "--x", "1/2", "--y", "2/3"}, "-1\n"},
		{[]string{"compare", "--x", "3/6", "--y", "1/2"}, "0\n"},
		{[]string{"compare", "--x", "0/1", "--y", "-1/2"}, "1\n"},
		{[]string{"sort", "2/3", "-1/2", "0/5", "-14/6"}, "-7/3 -1/2 0/1 2/3\n"},
		{[]string{"encode", "--value", "2/4"}, "d80100000000000000010000000000000002\n"},
		{[]string{"decode", "--raw", "d801fffffffffffffffd0000000000000004"}, "-3/4\n"},
		{[]string{"-f", "json", "add", "--x", "1/3", "--y", "1/6"}, "\"1/2\"\n"},
		{[]string{"-f", "json", "sort", "1/2", "1/3"}, "[\"1/3\",\"1/2\"]\n"},
		{[]string{"-f", "msgpack", "reduce", "--value", "2/4"}, "d80100000000000000010000000000000002\n"},
		{[]string{"-f", "msgpack", "sort", "1/2", "1/3"}, "92d80100000000000000010000000000000003d80100000000000000010000000000000002\n"},
		{[]string{"-c", "config/config.example.toml", "reduce", "--value", "6/4"}, "\"3/2\"\n"},
		{[]string{"-c", "config/config.example.toml", "-f", "text", "reduce", "--value", "6/4"}, "3/2\n"},
	} {
		out, err := runApp(tc.args...)
		require.Nil(t, err, tc.args)
		require.Equal(t, tc.out, out, tc.args)
	}
	logger.SetLevel(logger.INFO)
	logger.SetLimiter(0)
	require.Nil(t, logger.SetFilter(""))
}

func TestCommandErrors(t *testing.T) {
	require := require.New(t)

	_, err := runApp("div", "--x", "1/2", "--y", "0/5")
	require.ErrorIs(err, common.ErrZeroDenominator)
	_, err = runApp("reciprocal", "--value", "0/3")
	require.ErrorIs(err, common.ErrZeroDenominator)
	_, err = runApp("reduce", "--value", "1/0")
	require.ErrorIs(err, common.ErrZeroDenominator)
	_, err = runApp("reduce", "--value", "a/b")
	require.ErrorIs(err, common.ErrInvalidFormat)
	require.Contains(err.Error(), "--value")
	_, err = runApp("add", "--x", "1", "--y", "1/2")
	require.ErrorIs(err, common.ErrInvalidFormat)
	_, err = runApp("sort", "1/2", "x")
	require.ErrorIs(err, common.ErrInvalidFormat)
	_, err = runApp("sort")
	require.NotNil(err)
	_, err = runApp("decode", "--raw", "d80100000000000000060000000000000004")
	require.NotNil(err)
	out, err := runApp("decode", "--raw", "c0")
	require.ErrorIs(err, common.ErrZeroDenominator)
	require.Equal("", out)
	_, err = runApp("decode", "--raw", "zz")
	require.NotNil(err)
	_, err = runApp("-f", "xml", "reduce", "--value", "1/2")
	require.NotNil(err)
	_, err = runApp("-c", "config/config.missing.toml", "reduce", "--value", "1/2")
	require.NotNil(err)
	_, err = runApp("reduce")
	require.NotNil(err)
}
