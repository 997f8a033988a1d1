/*
Copyright (C) 2026  Carl-Philip Hänsch

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
/*
	miniscm interactive scheme interpreter with exact rational arithmetic

	https://pkelchte.wordpress.com/2013/12/31/scm-go/

*/
package main

import "os"
import "fmt"
import "flag"
import "time"
import "syscall"
import "os/signal"
import "github.com/fsnotify/fsnotify"
import "github.com/launix-de/miniscm/scm"

// workaround for flags package to allow multiple values
type arrayFlags []string

func (i *arrayFlags) String() string {
	return "dummy"
}

func (i *arrayFlags) Set(value string) error {
	*i = append(*i, value)
	return nil
}

func runFile(filename string, en *scm.Env) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		fmt.Println(err)
		return
	}
	if _, err := scm.EvalAll(filename, string(bytes), en); err != nil {
		fmt.Println(err)
	}
}

// watchFile re-runs a script whenever it changes on disk. Every run starts
// from a fresh environment so stale definitions of the previous version do
// not linger.
func watchFile(filename string) {
	runFile(filename, scm.EmptyEnv())
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		panic(err)
	}
	go func() {
		for {
			select {
			case <-watcher.Events:
				// flush all other events
				for {
					time.Sleep(10 * time.Millisecond) // delay a bit, so we don't read empty files
					select {
					case <-watcher.Events:
						// ignore
					default:
						goto to_reread
					}
				}
			to_reread:
				fmt.Println("reloading " + filename + " ...")
				runFile(filename, scm.EmptyEnv())
				watcher.Add(filename) // text editors rename, so we have to rewatch
			}
		}
	}()
	err = watcher.Add(filename)
	if err != nil {
		panic(err)
	}
}

func main() {
	fmt.Print(`miniscm Copyright (C) 2026   Carl-Philip Hänsch
    This program comes with ABSOLUTELY NO WARRANTY;
    This is free software, and you are welcome to redistribute it
    under certain conditions;

`)

	// parse command line options
	var commands arrayFlags
	flag.Var(&commands, "c", "Execute scm command")

	docs := ""
	flag.StringVar(&docs, "docs", "", "Write markdown documentation of all builtins to this folder and exit")

	watch := false
	flag.BoolVar(&watch, "watch", false, "Re-run script files whenever they change on disk")

	flag.Parse()
	scripts := flag.Args()

	if docs != "" {
		if err := scm.WriteDocumentation(docs); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		return
	}

	en := scm.EmptyEnv()
	for _, scmfile := range scripts {
		if watch {
			watchFile(scmfile)
		} else {
			runFile(scmfile, en)
		}
	}
	for _, command := range commands {
		result, err := scm.EvalAll("command line", command, en)
		if err != nil {
			fmt.Println(err)
			continue
		}
		if !result.IsVoid() {
			fmt.Println(scm.String(result))
		}
	}

	// install exit handler
	cancelChan := make(chan os.Signal, 1)
	signal.Notify(cancelChan, syscall.SIGTERM, syscall.SIGINT)
	go (func() {
		<-cancelChan
		if scm.ReplInstance != nil {
			scm.ReplInstance.Close()
		}
		os.Exit(1)
	})()

	if watch && len(scripts) > 0 {
		// stay alive and keep reloading until interrupted
		select {}
	}
	if len(scripts) == 0 && len(commands) == 0 {
		fmt.Print(`
    Type (help) to show help, (exit) to quit

`)
		// REPL shell
		scm.Repl(en)
	}
}
