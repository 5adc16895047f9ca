package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-resty/resty/v2"
	"github.com/urfave/cli/v2"
)

var (
	odexDataDir = defaultDataDir()
	statePath   = filepath.Join(odexDataDir, "state.json")
)

func main() {
	app := cli.NewApp()

	app.Version = "0.1.0"
	app.Name = "odex operator CLI"
	app.Usage = "Command line interface for odexd daemon operators"
	app.Commands = append(
		app.Commands,
		&configCmd,
		&optionCmd,
		&poolCmd,
		&ledgerCmd,
		&eventsCmd,
	)

	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}

var configCmd = cli.Command{
	Name:  "config",
	Usage: "manage the CLI state",
	Subcommands: []*cli.Command{
		{
			Name:  "init",
			Usage: "store the address of the daemon to connect to",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "addr",
					Usage: "the http address of the odexd daemon",
					Value: "http://localhost:9945",
				},
			},
			Action: func(ctx *cli.Context) error {
				return setState(map[string]string{"addr": ctx.String("addr")})
			},
		},
		{
			Name:  "show",
			Usage: "print the CLI state",
			Action: func(ctx *cli.Context) error {
				state, err := getState()
				if err != nil {
					return err
				}
				printRespJSON(state)
				return nil
			},
		},
	},
}

func getClient() (*resty.Client, error) {
	state, err := getState()
	if err != nil {
		return nil, err
	}
	addr, ok := state["addr"]
	if !ok {
		return nil, fmt.Errorf("daemon address is not set: try 'config init'")
	}
	return resty.New().SetBaseURL(addr), nil
}

func getState() (map[string]string, error) {
	data := map[string]string{}

	file, err := os.ReadFile(statePath)
	if err != nil {
		return nil, fmt.Errorf("get config state error: try 'config init'")
	}
	json.Unmarshal(file, &data)

	return data, nil
}

func setState(data map[string]string) error {
	if _, err := os.Stat(odexDataDir); os.IsNotExist(err) {
		os.Mkdir(odexDataDir, os.ModeDir|0755)
	}

	currentState, _ := getState()
	if currentState == nil {
		currentState = map[string]string{}
	}
	for key, value := range data {
		currentState[key] = value
	}

	file, err := json.Marshal(currentState)
	if err != nil {
		return err
	}
	return os.WriteFile(statePath, file, 0644)
}

func printRespJSON(resp interface{}) {
	out, err := json.MarshalIndent(resp, "", "\t")
	if err != nil {
		fmt.Println(resp)
		return
	}
	fmt.Println(string(out))
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[odex] %v\n", err)
	os.Exit(1)
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".odex-operator"
	}
	return filepath.Join(home, ".odex-operator")
}
