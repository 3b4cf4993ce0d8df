package cmd

import (
	"fmt"

	"github.com/philipparndt/gorig/internal/ui"
)

type CompletionCmd struct {
	Shell string `arg:"" help:"Shell type: bash, zsh, or fish" enum:"bash,zsh,fish"`
}

func (c *CompletionCmd) Run() error {
	script, err := completionScript(c.Shell)
	if err != nil {
		return err
	}
	fmt.Fprint(ui.Output, script)
	return nil
}

func completionScript(shell string) (string, error) {
	switch shell {
	case "bash":
		return bashCompletion, nil
	case "zsh":
		return zshCompletion, nil
	case "fish":
		return fishCompletion, nil
	default:
		return "", fmt.Errorf("unsupported shell: %s (supported: bash, zsh, fish)", shell)
	}
}

const bashCompletion = `# bash completion for gorig

_gorig_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Main commands
    if [[ ${COMP_CWORD} -eq 1 ]]; then
        opts="build check inspect attrs version completion"
        COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
        return 0
    fi

    case "${COMP_WORDS[1]}" in
        build)
            case "${prev}" in
                -o|--export)
                    COMPREPLY=( $(compgen -f -X '!*.@(yaml|yml)' -- ${cur}) )
                    return 0
                    ;;
                --style)
                    COMPREPLY=( $(compgen -W "monokai dracula github solarized-dark" -- ${cur}) )
                    return 0
                    ;;
            esac
            if [[ ${cur} == -* ]]; then
                opts="-o --export --print --style -h --help"
                COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
            else
                COMPREPLY=( $(compgen -f -X '!*.@(yaml|yml)' -- ${cur}) )
            fi
            ;;
        check)
            opts="-p --point --precision --axes --aim --twist -h --help"
            COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
            ;;
        inspect)
            if [[ ${cur} == -* ]]; then
                COMPREPLY=( $(compgen -W "-h --help" -- ${cur}) )
            else
                COMPREPLY=( $(compgen -f -X '!*.@(yaml|yml)' -- ${cur}) )
            fi
            ;;
        attrs)
            opts="all translate rotate scale visibility tx ty tz rx ry rz sx sy sz -u --unlock --short"
            COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
            ;;
        completion)
            if [[ ${COMP_CWORD} -eq 2 ]]; then
                COMPREPLY=( $(compgen -W "bash zsh fish" -- ${cur}) )
            fi
            ;;
    esac
    return 0
}

complete -F _gorig_completions gorig
`

const zshCompletion = `#compdef gorig

_gorig() {
    local -a commands
    commands=(
        'build:Build the joint chains of a rig description'
        'check:Check whether positions are collinear or coplanar'
        'inspect:Inspect an exported scene and show its hierarchy'
        'attrs:Resolve attribute aliases into channel names'
        'version:Show version information'
        'completion:Generate shell completion script'
    )

    local -a build_opts
    build_opts=(
        '(-o --export)'{-o,--export}'[Write the built scene to this file]:output file:_files -g "*.{yaml,yml}"'
        '--print[Print the highlighted scene document]'
        '--style[Highlighting style]:style:(monokai dracula github solarized-dark)'
        '(-h --help)'{-h,--help}'[Show help]'
        '1:rig file:_files -g "*.{yaml,yml}"'
    )

    local -a check_opts
    check_opts=(
        '*'{-p,--point}'[Position as x,y,z]:position:'
        '--precision[Decimal digits used for comparisons]:digits:'
        '--axes[Show the joint axes of a planar chain]'
        '--aim[Aim axis]:axis:(+x -x +y -y +z -z)'
        '--twist[Twist axis]:axis:(+x -x +y -y +z -z)'
        '(-h --help)'{-h,--help}'[Show help]'
    )

    _arguments -C \
        '1: :->command' \
        '*:: :->args'

    case $state in
        command)
            _describe 'command' commands
            ;;
        args)
            case $words[1] in
                build)
                    _arguments $build_opts
                    ;;
                check)
                    _arguments $check_opts
                    ;;
                inspect)
                    _arguments '1:scene file:_files -g "*.{yaml,yml}"'
                    ;;
                attrs)
                    _values -s ' ' 'alias' all translate rotate scale visibility tx ty tz rx ry rz sx sy sz
                    ;;
                completion)
                    _values 'shell' bash zsh fish
                    ;;
            esac
            ;;
    esac
}

_gorig
`

const fishCompletion = `# fish completion for gorig

# Main commands
complete -c gorig -f -n "__fish_use_subcommand" -a "build" -d "Build the joint chains of a rig description"
complete -c gorig -f -n "__fish_use_subcommand" -a "check" -d "Check whether positions are collinear or coplanar"
complete -c gorig -f -n "__fish_use_subcommand" -a "inspect" -d "Inspect an exported scene and show its hierarchy"
complete -c gorig -f -n "__fish_use_subcommand" -a "attrs" -d "Resolve attribute aliases into channel names"
complete -c gorig -f -n "__fish_use_subcommand" -a "version" -d "Show version information"
complete -c gorig -f -n "__fish_use_subcommand" -a "completion" -d "Generate shell completion script"

# build command options
complete -c gorig -n "__fish_seen_subcommand_from build" -s o -l export -d "Write the built scene to this file" -r -a "(__fish_complete_suffix .yaml)"
complete -c gorig -f -n "__fish_seen_subcommand_from build" -l print -d "Print the highlighted scene document"
complete -c gorig -f -n "__fish_seen_subcommand_from build" -l style -d "Highlighting style" -r -a "monokai dracula github solarized-dark"
complete -c gorig -n "__fish_seen_subcommand_from build" -a "(__fish_complete_suffix .yaml)" -d "Rig description"

# check command options
complete -c gorig -f -n "__fish_seen_subcommand_from check" -s p -l point -d "Position as x,y,z" -r
complete -c gorig -f -n "__fish_seen_subcommand_from check" -l precision -d "Decimal digits used for comparisons" -r
complete -c gorig -f -n "__fish_seen_subcommand_from check" -l axes -d "Show the joint axes of a planar chain"
complete -c gorig -f -n "__fish_seen_subcommand_from check" -l aim -d "Aim axis" -r -a "+x -x +y -y +z -z"
complete -c gorig -f -n "__fish_seen_subcommand_from check" -l twist -d "Twist axis" -r -a "+x -x +y -y +z -z"

# inspect command options
complete -c gorig -n "__fish_seen_subcommand_from inspect" -a "(__fish_complete_suffix .yaml)" -d "Scene file"

# attrs command options
complete -c gorig -f -n "__fish_seen_subcommand_from attrs" -a "all translate rotate scale visibility tx ty tz rx ry rz sx sy sz"
complete -c gorig -f -n "__fish_seen_subcommand_from attrs" -s u -l unlock -d "Aliases to leave out" -r
complete -c gorig -f -n "__fish_seen_subcommand_from attrs" -l short -d "Print short channel names"

# completion command options
complete -c gorig -f -n "__fish_seen_subcommand_from completion" -a "bash zsh fish"
`

func (c *CompletionCmd) Help() string {
	return `
Generate shell completion scripts for gorig.

Examples:
  # Bash
  gorig completion bash > ~/.local/share/bash-completion/completions/gorig

  # Zsh
  gorig completion zsh > ~/.zsh/completion/_gorig

  # Fish
  gorig completion fish > ~/.config/fish/completions/gorig.fish
`
}
