package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gofitkit/fit"
)

var (
	raw                     bool
	warnings                bool
	errorOnInvalidEnum      bool
	errorOnUnknownMessage   bool
	errorOnUndocumentedFeld bool
)

func prettyPrint(buf []byte) string {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, buf, "", "\t"); err != nil {
		log.Println("JSON parse error:", err)
		return string(buf)
	}
	return pretty.String()
}

func isDirectory(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func dumpFITFile(filename string) {
	log.Printf("Processing filename %s", filename)

	data, err := os.ReadFile(filename)
	if err != nil {
		log.Printf("error while reading file %s: %s", filename, err)
		return
	}

	opts := fit.Options{
		ErrorOnInvalidEnumValue:     errorOnInvalidEnum,
		ErrorOnUnknownGlobalMessage: errorOnUnknownMessage,
		ErrorOnUndocumentedField:    errorOnUndocumentedFeld,
	}

	if raw {
		rawFile, err := fit.DecodeFile(data)
		if err != nil {
			log.Printf("error while decoding file %s: %s", filename, err)
			return
		}
		out, _ := json.Marshal(rawFile)
		fmt.Println(prettyPrint(out))
		return
	}

	f, err := fit.NewBytes(data, opts)
	if err != nil {
		log.Printf("error while opening file %s: %s", filename, err)
		return
	}
	defer f.Close()

	messages, msgs, err := f.Decode()
	if err != nil {
		log.Printf("error while decoding file %s: %s", filename, err)
		return
	}

	out, _ := json.Marshal(messages)
	fmt.Println(prettyPrint(out))

	if warnings {
		for _, w := range msgs {
			fmt.Fprintln(os.Stderr, "warning:", w)
		}
	}
}

func dump(cmd *cobra.Command, args []string) {
	filePath := args[0]

	if !isDirectory(filePath) {
		dumpFITFile(filePath)
		return
	}

	var fileList []string
	filepath.Walk(filePath, func(path string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			fileList = append(fileList, path)
		}
		return nil
	})
	for _, file := range fileList {
		dumpFITFile(file)
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "fitdump",
		Short: "A FIT file decoder",
		Long:  "Decodes ANT+ FIT files into their typed message stream",
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("fitdump version 0.1.0")
		},
	}

	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Decode a FIT file or a directory of FIT files",
		Args:  cobra.MinimumNArgs(1),
		Run:   dump,
	}

	dumpCmd.Flags().BoolVarP(&raw, "raw", "", false, "dump the byte-level record stream instead of typed messages")
	dumpCmd.Flags().BoolVarP(&warnings, "warnings", "w", false, "print decode warnings to stderr")
	dumpCmd.Flags().BoolVarP(&errorOnInvalidEnum, "strict-enums", "", false, "fail on any undocumented enum value")
	dumpCmd.Flags().BoolVarP(&errorOnUnknownMessage, "strict-messages", "", false, "fail on any undocumented global message number")
	dumpCmd.Flags().BoolVarP(&errorOnUndocumentedFeld, "strict-fields", "", false, "fail on any undocumented field on a documented message")

	rootCmd.AddCommand(versionCmd, dumpCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
