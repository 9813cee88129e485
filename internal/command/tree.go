package command

// The command tree is static configuration: built once here, never mutated.
// The same node may be mounted in more than one place (dpi is reachable both
// at top level and under resolution), so nodes form a DAG of immutable
// descriptions rather than a strict tree.

var cmdInfoNode = &Command{
	Name:  "info",
	Help:  "Show information about the device's capabilities",
	Flags: NeedDevice,
	Exec:  cmdInfo,
}

var cmdListNode = &Command{
	Name: "list",
	Help: "List the available devices",
	Exec: cmdList,
}

var cmdChangeButtonNode = &Command{
	Name:  "change-button",
	Args:  "X <button|key|special|macro> <number|KEY_FOO|special|macro name:KEY_FOO,KEY_BAR,...>",
	Help:  "Remap button X to the given action in the active profile",
	Flags: NeedDevice | NeedProfile,
	Exec:  cmdChangeButton,
}

var cmdSwitchEtekcityNode = &Command{
	Name:  "switch-etekcity",
	Help:  "Switch the Etekcity mouse active profile",
	Flags: NeedDevice | NeedProfile,
	Exec:  cmdSwitchEtekcity,
}

var cmdButtonNode = &Command{
	Name:  "button",
	Args:  "[...]",
	Help:  "Modify a button",
	Flags: NeedDevice | NeedProfile,
	Exec:  cmdButton,
}

var cmdResolutionActiveNode = &Command{
	Name:  "active",
	Flags: NeedDevice | NeedProfile,
	Exec:  routeSubcommands,
	Subcommands: []*Command{
		{
			Name:  "get",
			Help:  "Get the active resolution number",
			Flags: NeedDevice | NeedProfile,
			Exec:  cmdResolutionActiveGet,
		},
		{
			Name:  "set",
			Args:  "M",
			Help:  "Set the active resolution number",
			Flags: NeedDevice | NeedProfile,
			Exec:  cmdResolutionActiveSet,
		},
	},
}

var cmdResolutionDPINode = &Command{
	Name:  "dpi",
	Flags: NeedDevice | NeedProfile | NeedResolution,
	Exec:  routeSubcommands,
	Subcommands: []*Command{
		{
			Name:  "get",
			Help:  "Get the resolution in dpi",
			Flags: NeedDevice | NeedProfile | NeedResolution,
			Exec:  cmdResolutionDPIGet,
		},
		{
			Name:  "set",
			Args:  "<dpi>",
			Help:  "Set the resolution in dpi",
			Flags: NeedDevice | NeedProfile | NeedResolution,
			Exec:  cmdResolutionDPISet,
		},
	},
}

var cmdResolutionNode = &Command{
	Name:  "resolution",
	Args:  "N",
	Flags: NeedDevice | NeedProfile,
	Exec:  cmdResolution,
	Subcommands: []*Command{
		cmdResolutionActiveNode,
		cmdResolutionDPINode,
	},
}

var cmdProfileActiveNode = &Command{
	Name:  "active",
	Flags: NeedDevice,
	Exec:  routeSubcommands,
	Subcommands: []*Command{
		{
			Name:  "get",
			Help:  "Get the active profile number",
			Flags: NeedDevice,
			Exec:  cmdProfileActiveGet,
		},
		{
			Name:  "set",
			Args:  "N",
			Help:  "Set the active profile number",
			Flags: NeedDevice,
			Exec:  cmdProfileActiveSet,
		},
	},
}

var cmdProfileNode = &Command{
	Name:  "profile",
	Args:  "<idx>",
	Flags: NeedDevice,
	Exec:  cmdProfile,
	Subcommands: []*Command{
		cmdProfileActiveNode,
		cmdResolutionNode,
		cmdButtonNode,
	},
}

var rootNode = &Command{
	Name: "ratbagctl",
	Exec: routeSubcommands,
	Subcommands: []*Command{
		cmdInfoNode,
		cmdListNode,
		cmdChangeButtonNode,
		cmdSwitchEtekcityNode,
		cmdButtonNode,
		cmdResolutionNode,
		cmdProfileNode,
		cmdResolutionDPINode,
	},
}

// Tree returns the root of the command tree.
func Tree() *Command {
	return rootNode
}
