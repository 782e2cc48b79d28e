package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	tv "github.com/kungfusheep/tvision"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Print the application palette as colored swatches",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		pal := cfg.Palette()
		const perRow = 8
		rows := (len(pal) + perRow - 1) / perRow
		buf := tv.NewBuffer(perRow*9, rows)
		for i := range pal {
			a := pal.Attr(uint8(i + 1))
			x, y := i%perRow*9, i/perRow
			label := fmt.Sprintf(" %3d %02x ", i+1, a.Byte())
			for j, r := range label {
				buf.Set(x+j, y, tv.NewCell(r, a))
			}
		}
		return tv.WriteANSI(os.Stdout, buf, buf.Rect())
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(out)
		return err
	},
}
