package command

import (
	"fmt"

	"github.com/ZephyraSilentis/libratbag/internal/logger"
	"github.com/ZephyraSilentis/libratbag/pkg/ratbag"
)

func cmdList(_ *Command, rb ratbag.Ratbag, opts *Options, args []string) error {
	if len(args) != 0 {
		return Usagef("list takes no arguments")
	}

	nodes, err := rb.DeviceNodes()
	if err != nil {
		// No device directory at all behaves like no devices.
		logger.Debug("device node enumeration failed", "error", err)
		nodes = nil
	}

	supported := 0
	for _, path := range nodes {
		dev, err := rb.OpenDevice(path)
		if err != nil {
			logger.Debug("skipping unsupported node", "path", path, "error", err)
			continue
		}
		fmt.Fprintf(opts.Out, "%s:\t%s\n", path, dev.Name())
		dev.Release()
		supported++
	}

	if supported == 0 {
		fmt.Fprintf(opts.Out, "No supported devices found\n")
	}

	return nil
}
