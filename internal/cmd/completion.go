package cmd

import (
	"fmt"
	"os"
)

type CompletionCmd struct {
	Shell string `arg:"" help:"Shell type: bash, zsh, or fish"`
}

func (c *CompletionCmd) Run() error {
	switch c.Shell {
	case "bash":
		return c.generateBash()
	case "zsh":
		return c.generateZsh()
	case "fish":
		return c.generateFish()
	default:
		return fmt.Errorf("unsupported shell: %s (supported: bash, zsh, fish)", c.Shell)
	}
}

func (c *CompletionCmd) generateBash() error {
	script := `# bash completion for dpxver

_dpxver_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Main commands
    if [[ ${COMP_CWORD} -eq 1 ]]; then
        opts="retag export inspect completion version"
        COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
        return 0
    fi

    case "${COMP_WORDS[1]}" in
        retag)
            if [[ ${cur} == -* ]]; then
                opts="-m --message --no-input --skip-unchanged -h --help"
                COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
            else
                COMPREPLY=( $(compgen -f -X '!*.@(yaml|yml)' -- ${cur}) )
            fi
            ;;
        export)
            case "${prev}" in
                -o|--output)
                    COMPREPLY=( $(compgen -d -- ${cur}) )
                    ;;
                *)
                    if [[ ${cur} == -* ]]; then
                        opts="-o --output -y --yes -h --help"
                        COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
                    else
                        COMPREPLY=( $(compgen -f -X '!*.@(yaml|yml)' -- ${cur}) )
                    fi
                    ;;
            esac
            ;;
        inspect)
            if [[ ${cur} == -* ]]; then
                opts="--source -h --help"
                COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
            else
                COMPREPLY=( $(compgen -f -X '!*.@(yaml|yml)' -- ${cur}) )
            fi
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh fish" -- ${cur}) )
            ;;
    esac
    return 0
}

complete -F _dpxver_completions dpxver
`
	fmt.Fprint(os.Stdout, script)
	return nil
}

func (c *CompletionCmd) generateZsh() error {
	script := `#compdef dpxver

_dpxver() {
    local -a commands
    commands=(
        'retag:Apply the next version tag to matched components and bodies'
        'export:Export every tagged node as a separate STL file'
        'inspect:Inspect an assembly document and show its tree'
        'completion:Generate shell completion scripts'
        'version:Show version information'
    )

    if (( CURRENT == 2 )); then
        _describe 'command' commands
        return
    fi

    case ${words[2]} in
        retag)
            _arguments \
                '-m[Version comment]:comment:' \
                '--message[Version comment]:comment:' \
                '--no-input[Never prompt]' \
                '--skip-unchanged[Skip writes for current names]' \
                '*:document:_files -g "*.(yaml|yml)"'
            ;;
        export)
            _arguments \
                '-o[Output directory]:directory:_directories' \
                '--output[Output directory]:directory:_directories' \
                '-y[Skip the confirmation prompt]' \
                '--yes[Skip the confirmation prompt]' \
                '*:document:_files -g "*.(yaml|yml)"'
            ;;
        inspect)
            _arguments \
                '--source[Print the raw document]' \
                '*:document:_files -g "*.(yaml|yml)"'
            ;;
        completion)
            _values 'shell' bash zsh fish
            ;;
    esac
}

_dpxver "$@"
`
	fmt.Fprint(os.Stdout, script)
	return nil
}

func (c *CompletionCmd) generateFish() error {
	script := `# fish completion for dpxver

complete -c dpxver -f
complete -c dpxver -n '__fish_use_subcommand' -a retag -d 'Apply the next version tag'
complete -c dpxver -n '__fish_use_subcommand' -a export -d 'Export tagged nodes as STL'
complete -c dpxver -n '__fish_use_subcommand' -a inspect -d 'Inspect an assembly document'
complete -c dpxver -n '__fish_use_subcommand' -a completion -d 'Generate completion scripts'
complete -c dpxver -n '__fish_use_subcommand' -a version -d 'Show version information'

complete -c dpxver -n '__fish_seen_subcommand_from retag' -s m -l message -d 'Version comment' -r
complete -c dpxver -n '__fish_seen_subcommand_from retag' -l no-input -d 'Never prompt'
complete -c dpxver -n '__fish_seen_subcommand_from retag' -l skip-unchanged -d 'Skip writes for current names'
complete -c dpxver -n '__fish_seen_subcommand_from retag' -k -a '(__fish_complete_suffix .yaml .yml)'

complete -c dpxver -n '__fish_seen_subcommand_from export' -s o -l output -d 'Output directory' -r -a '(__fish_complete_directories)'
complete -c dpxver -n '__fish_seen_subcommand_from export' -s y -l yes -d 'Skip the confirmation prompt'
complete -c dpxver -n '__fish_seen_subcommand_from export' -k -a '(__fish_complete_suffix .yaml .yml)'

complete -c dpxver -n '__fish_seen_subcommand_from inspect' -l source -d 'Print the raw document'
complete -c dpxver -n '__fish_seen_subcommand_from inspect' -k -a '(__fish_complete_suffix .yaml .yml)'

complete -c dpxver -n '__fish_seen_subcommand_from completion' -a 'bash zsh fish'
`
	fmt.Fprint(os.Stdout, script)
	return nil
}
