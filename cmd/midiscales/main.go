package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vsariola/midiscales"
	"github.com/vsariola/midiscales/render"
	"github.com/vsariola/midiscales/version"
)

const defaultRoot = 42

func main() {
	root := flag.Int("r", defaultRoot, "Root MIDI note the scales and chords are spelled from.")
	kindList := flag.String("s", "", "Only list these comma separated scale kinds, e.g. major,blues-minor. By default, all kinds are listed.")
	format := flag.String("f", render.DefaultTemplate, "Built-in template to render the listing with. Possible values: "+strings.Join(render.Templates(), ", "))
	tmplFile := flag.String("t", "", "Render the listing with the template in this file instead of a built-in template.")
	yamlOut := flag.Bool("y", false, "Output the listing as .yml instead of rendering it.")
	jsonOut := flag.Bool("j", false, "Output the listing as .json instead of rendering it.")
	versionFlag := flag.Bool("v", false, "Print version.")
	help := flag.Bool("h", false, "Show help.")
	flag.Usage = printUsage
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.VersionOrHash())
		os.Exit(0)
	}
	if *help || flag.NArg() > 0 {
		flag.Usage()
		os.Exit(0)
	}
	if *root < 0 || *root > 127 {
		log.Fatalf("root note %v is not a MIDI note (0..127)", *root)
	}
	kinds, err := parseKinds(*kindList)
	if err != nil {
		log.Fatal(err)
	}
	listing, err := render.NewListing(*root, kinds...)
	if err != nil {
		log.Fatal(err)
	}
	switch {
	case *yamlOut:
		out, err := yaml.Marshal(listing)
		if err != nil {
			log.Fatalf("could not marshal the listing as yaml: %v", err)
		}
		os.Stdout.Write(out)
	case *jsonOut:
		out, err := json.MarshalIndent(listing, "", "  ")
		if err != nil {
			log.Fatalf("could not marshal the listing as json: %v", err)
		}
		fmt.Println(string(out))
	default:
		var r *render.Renderer
		if *tmplFile != "" {
			r, err = render.NewFromFile(*tmplFile)
		} else {
			r, err = render.New(*format)
		}
		if err != nil {
			log.Fatal(err)
		}
		if err := r.Render(os.Stdout, listing); err != nil {
			fmt.Fprintf(os.Stderr, "rendering failed: %v\n", err)
			os.Exit(1)
		}
	}
}

func parseKinds(list string) ([]midiscales.ScaleKind, error) {
	var ret []midiscales.ScaleKind
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		kind, err := midiscales.ParseScaleKind(name)
		if err != nil {
			return nil, err
		}
		ret = append(ret, kind)
	}
	return ret, nil
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Lists musical scales in all their modes, spelled from a root note, with a basic triad for each.\nUsage: %s [flags]\n", os.Args[0])
	flag.PrintDefaults()
}
