package main

import (
	"io"
	"os"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libeasygo/pathutils"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libhawking/catalog"
	"github.com/sgostarter/libhawking/config"
	"github.com/sgostarter/libhawking/tablestore"
	"github.com/spf13/cobra"
)

func convertCmd(newLogger func() l.Wrapper) *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert raw text tables into loadable blobs",
	}

	cmd.PersistentFlags().StringVar(&root, "root", "tables", "Table directory")

	newLoader := func() *tablestore.FSLoader {
		_ = pathutils.MustDirExists(root)

		return tablestore.NewFSLoader(root, rawfs.NewFSStorage(root), newLogger())
	}

	cmd.AddCommand(convertGreybodyCmd(newLoader), convertYieldCmd(newLoader))

	return cmd
}

func convertGreybodyCmd(newLoader func() *tablestore.FSLoader) *cobra.Command {
	var spin, gridFile, lowFile, highFile string

	cmd := &cobra.Command{
		Use:   "greybody",
		Short: "Convert the greybody grid and fits of one spin class",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := catalog.ParseSpinClass(spin)
			if err != nil {
				return err
			}

			files, err := openAll(gridFile, lowFile, highFile)
			if err != nil {
				return err
			}
			defer closeAll(files)

			return tablestore.ConvertHybridText(newLoader(), sc, files[0], files[1], files[2])
		},
	}

	cmd.Flags().StringVar(&spin, "spin", "spin_1", "Spin class (spin_0, spin_1_2, spin_1, spin_3_2, spin_2)")
	cmd.Flags().StringVar(&gridFile, "grid", "", "Grid text file")
	cmd.Flags().StringVar(&lowFile, "low", "", "Low energy fit text file")
	cmd.Flags().StringVar(&highFile, "high", "", "High energy fit text file")

	_ = cmd.MarkFlagRequired("grid")
	_ = cmd.MarkFlagRequired("low")
	_ = cmd.MarkFlagRequired("high")

	return cmd
}

func convertYieldCmd(newLoader func() *tablestore.FSLoader) *cobra.Command {
	var (
		regime string
		tables map[string]string
	)

	cmd := &cobra.Command{
		Use:   "yield",
		Short: "Convert the per-emitter yield grids of one regime",
		RunE: func(cmd *cobra.Command, args []string) error {
			texts := make(map[catalog.Particle]io.Reader, len(tables))

			var files []*os.File
			defer func() {
				closeAll(files)
			}()

			for name, path := range tables {
				p, err := catalog.ParseParticle(name)
				if err != nil {
					return err
				}

				f, err := os.Open(path)
				if err != nil {
					return err
				}

				files = append(files, f)
				texts[p] = f
			}

			return tablestore.ConvertYieldText(newLoader(), regime, texts)
		},
	}

	cmd.Flags().StringVar(&regime, "regime", "", "Regime id")
	cmd.Flags().StringToStringVar(&tables, "table", nil, "Emitter grid as particle=path, repeatable")

	_ = cmd.MarkFlagRequired("regime")
	_ = cmd.MarkFlagRequired("table")

	return cmd
}

func initConfigCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "init-config",
		Short: "Write the default config",
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.DefaultConfig().SaveToFile(out)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "hawkspec.yaml", "Config file path")

	return cmd
}

func openAll(paths ...string) (files []*os.File, err error) {
	for _, path := range paths {
		var f *os.File

		f, err = os.Open(path)
		if err != nil {
			closeAll(files)

			return nil, err
		}

		files = append(files, f)
	}

	return
}

func closeAll(files []*os.File) {
	for _, f := range files {
		_ = f.Close()
	}
}
