package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// promptMissing fills in required flags the caller omitted.
func promptMissing(outputDir, modelFileList *string) error {
	if *outputDir == "" {
		prompt := &survey.Input{
			Message: "Output directory for generated artifacts:",
			Help:    "selected_operators.yaml, selected_mobile_ops.h, and the model-check source land here",
		}
		if err := ask(prompt, outputDir); err != nil {
			return err
		}
	}
	if *modelFileList == "" {
		prompt := &survey.Input{
			Message: "Model manifest path (or @file listing manifest paths):",
		}
		if err := ask(prompt, modelFileList); err != nil {
			return err
		}
	}
	return nil
}

// confirmOverwrite asks before clobbering artifacts already present in the
// output directory.
func confirmOverwrite(outputDir string) (bool, error) {
	entries, err := os.ReadDir(outputDir)
	if err != nil || len(entries) == 0 {
		return true, nil
	}

	confirmed := false
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("%s is not empty; overwrite existing artifacts?", outputDir),
		Default: true,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return false, errors.New("interrupted")
		}
		return false, err
	}
	return confirmed, nil
}

func ask(prompt survey.Prompt, response any) error {
	err := survey.AskOne(prompt, response, survey.WithValidator(survey.Required))
	if errors.Is(err, terminal.InterruptErr) {
		return errors.New("interrupted")
	}
	return err
}
