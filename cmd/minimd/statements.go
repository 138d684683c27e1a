package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alnah/go-minimd"
	"github.com/alnah/go-minimd/internal/yamlutil"
)

// statementDump is the YAML document printed by --statements.
type statementDump struct {
	Source     string             `yaml:"source"`
	Statements []minimd.Statement `yaml:"statements"`
}

// runStatements prints how each line of the input is classified, as YAML.
// A directory yields one document per Markdown file, as a sequence.
func runStatements(inputPath, output string, exclude []string, env *Environment) error {
	var dumps []statementDump

	if inputPath == stdinArg {
		content, err := io.ReadAll(env.Stdin)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrReadInput, err)
		}
		dumps = append(dumps, statementDump{Source: "stdin", Statements: minimd.Parse(string(content))})
	} else {
		files, err := discoverFiles(inputPath, "", extHTML, exclude)
		if err != nil {
			return fmt.Errorf("discovering files: %w", err)
		}
		for _, f := range files {
			content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
			if err != nil {
				return fmt.Errorf("%w: %v", ErrReadInput, err)
			}
			dumps = append(dumps, statementDump{Source: f.InputPath, Statements: minimd.Parse(string(content))})
		}
	}

	var v any = dumps
	if len(dumps) == 1 {
		v = dumps[0]
	}
	data, err := yamlutil.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding statements: %w", err)
	}

	if output != "" {
		return writeOutput(output, data)
	}
	if _, err := env.Stdout.Write(data); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
