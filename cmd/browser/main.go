// Command browser loads an HTTP response (or raw HTML) file through the
// page pipeline and prints the resulting DOM tree and display items.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/lukehoban/browser/dom"
	"github.com/lukehoban/browser/httpmsg"
	"github.com/lukehoban/browser/page"
	"github.com/lukehoban/browser/paint"
	"github.com/lukehoban/browser/raster"
)

func main() {
	jsonOut := flag.Bool("json", false, "print display items as JSON instead of a tree dump")
	debugPNG := flag.String("debug-png", "", "write a rasterized PNG of the painted page to this path")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: browser [-json] [-debug-png path] <file>")
		os.Exit(1)
	}

	content, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading file: %v\n", err)
		os.Exit(1)
	}

	resp, err := asResponse(string(content))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error parsing input: %v\n", err)
		os.Exit(1)
	}

	p := page.New()
	p.ReceiveResponse(resp)

	if *jsonOut {
		b, err := json.Marshal(p.DisplayItems())
		if err != nil {
			fmt.Fprintf(os.Stderr, "error encoding json: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(b))
	} else {
		fmt.Println("=== DOM Tree ===")
		printDOM(p.Document(), 0)

		fmt.Println("\n=== Display Items ===")
		for _, item := range p.DisplayItems() {
			printItem(item)
		}
	}

	if *debugPNG != "" {
		canvas := raster.Render(p.DisplayItems())
		if err := canvas.SavePNG(*debugPNG); err != nil {
			fmt.Fprintf(os.Stderr, "error writing debug png: %v\n", err)
			os.Exit(1)
		}
	}
}

// asResponse treats content as a raw HTTP response when it looks like
// one ("HTTP/" status line), otherwise wraps it as a synthetic 200
// response whose body is the content verbatim.
func asResponse(content string) (*httpmsg.Response, error) {
	if strings.HasPrefix(strings.TrimLeft(content, " \t\r\n"), "HTTP/") {
		return httpmsg.Parse(content)
	}
	return &httpmsg.Response{StatusCode: 200, Body: content}, nil
}

func printDOM(n *dom.Node, indent int) {
	if n == nil {
		return
	}
	prefix := strings.Repeat("  ", indent)
	switch n.Kind {
	case dom.DocumentKind:
		fmt.Printf("%s[document]\n", prefix)
	case dom.ElementKind:
		fmt.Printf("%s<%s>\n", prefix, n.Tag)
	case dom.TextKind:
		fmt.Printf("%s%q\n", prefix, n.Text)
	}
	for _, c := range n.Children {
		printDOM(c, indent+1)
	}
}

func printItem(item paint.DisplayItem) {
	switch item.Kind {
	case paint.RectItem:
		fmt.Printf("rect  x=%d y=%d w=%d h=%d color=%s\n", item.Point.X, item.Point.Y, item.Size.Width, item.Size.Height, item.Style.BackgroundColor().Name)
	case paint.TextItem:
		fmt.Printf("text  x=%d y=%d %q\n", item.Point.X, item.Point.Y, item.Text)
	}
}
