package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MixinNetwork/rational/common"
	"github.com/MixinNetwork/rational/config"
	"github.com/MixinNetwork/rational/logger"
	"github.com/urfave/cli/v2"
)

const metadataConfig = "config"

func setupCmd(c *cli.Context) error {
	custom := config.Default()
	if file := c.String("config"); file != "" {
		conf, err := config.Initialize(file)
		if err != nil {
			return err
		}
		custom = conf
	}
	if c.IsSet("log") {
		custom.Log.Level = c.Int("log")
	}
	if c.IsSet("filter") {
		custom.Log.Filter = c.String("filter")
	}
	if c.IsSet("format") {
		custom.Output.Format = c.String("format")
	}
	err := custom.Validate()
	if err != nil {
		return err
	}

	logger.SetLevel(custom.Log.Level)
	logger.SetLimiter(custom.Log.Limiter)
	err = logger.SetFilter(custom.Log.Filter)
	if err != nil {
		return err
	}
	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]interface{})
	}
	c.App.Metadata[metadataConfig] = custom
	return nil
}

func customConfig(c *cli.Context) *config.Custom {
	if custom, ok := c.App.Metadata[metadataConfig].(*config.Custom); ok {
		return custom
	}
	return config.Default()
}

func parseFlag(c *cli.Context, name string) (common.Rational, error) {
	r, err := common.ParseRational(c.String(name))
	if err != nil {
		logger.Errorf("%s %s %s", c.Command.Name, name, err)
		return r, fmt.Errorf("--%s: %w", name, err)
	}
	return r, nil
}

func reduceCmd(c *cli.Context) error {
	r, err := parseFlag(c, "value")
	if err != nil {
		return err
	}
	logger.Verbosef("reduce %s => %s", c.String("value"), r)
	return output(c, r)
}

func reciprocalCmd(c *cli.Context) error {
	r, err := parseFlag(c, "value")
	if err != nil {
		return err
	}
	v, err := r.Reciprocal()
	if err != nil {
		logger.Errorf("reciprocal %s %s", r, err)
		return err
	}
	logger.Verbosef("reciprocal %s => %s", r, v)
	return output(c, v)
}

func arithmeticCmd(c *cli.Context) error {
	x, err := parseFlag(c, "x")
	if err != nil {
		return err
	}
	y, err := parseFlag(c, "y")
	if err != nil {
		return err
	}

	var v common.Rational
	switch op := c.Command.Name; op {
	case "add":
		v = x.Add(y)
	case "sub":
		v = x.Sub(y)
	case "mul":
		v = x.Mul(y)
	case "div":
		v, err = x.Div(y)
	default:
		return fmt.Errorf("invalid operation %s", op)
	}
	if err != nil {
		logger.Errorf("%s %s %s %s", c.Command.Name, x, y, err)
		return err
	}
	logger.Verbosef("%s %s %s => %s", c.Command.Name, x, y, v)
	return output(c, v)
}

func compareCmd(c *cli.Context) error {
	x, err := parseFlag(c, "x")
	if err != nil {
		return err
	}
	y, err := parseFlag(c, "y")
	if err != nil {
		return err
	}
	cmp := x.Cmp(y)
	logger.Verbosef("compare %s %s => %d", x, y, cmp)
	_, err = fmt.Fprintln(c.App.Writer, cmp)
	return err
}

func sortCmd(c *cli.Context) error {
	args := c.Args().Slice()
	if len(args) == 0 {
		return fmt.Errorf("sort requires at least one rational")
	}
	rs := make([]common.Rational, len(args))
	for i, s := range args {
		r, err := common.ParseRational(s)
		if err != nil {
			logger.Errorf("sort %s %s", s, err)
			return err
		}
		rs[i] = r
	}
	common.SortRationals(rs)
	logger.Verbosef("sort %d values", len(rs))
	return output(c, rs)
}

func encodeCmd(c *cli.Context) error {
	r, err := parseFlag(c, "value")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, hex.EncodeToString(common.MsgpackMarshalPanic(r)))
	return err
}

func decodeCmd(c *cli.Context) error {
	raw, err := hex.DecodeString(c.String("raw"))
	if err != nil {
		return err
	}
	var r common.Rational
	err = common.MsgpackUnmarshal(raw, &r)
	if err != nil {
		logger.Errorf("decode %s %s", c.String("raw"), err)
		return err
	}
	return output(c, r)
}

// output writes a Rational or a []Rational in the configured format.
func output(c *cli.Context, val interface{}) error {
	var out string
	switch customConfig(c).Output.Format {
	case config.OutputFormatJSON:
		data, err := json.Marshal(val)
		if err != nil {
			return err
		}
		out = string(data)
	case config.OutputFormatMsgpack:
		out = hex.EncodeToString(common.MsgpackMarshalPanic(val))
	default:
		switch v := val.(type) {
		case []common.Rational:
			ss := make([]string, len(v))
			for i, r := range v {
				ss[i] = r.String()
			}
			out = strings.Join(ss, " ")
		default:
			out = fmt.Sprint(v)
		}
	}
	_, err := fmt.Fprintln(c.App.Writer, out)
	return err
}
