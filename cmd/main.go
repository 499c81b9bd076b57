package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/obeliskdev/mctext"
	"github.com/obeliskdev/mctext/codec"
)

func main() {
	flatten := flag.Bool("flatten", false, "print only the flattened plain text")
	flag.Parse()

	if flag.NArg() > 0 {
		for _, doc := range flag.Args() {
			if err := process(doc, *flatten); err != nil {
				log.Fatalf("Failed to process component: %v", err)
			}
		}
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		if err := process(line, *flatten); err != nil {
			log.Printf("Failed to process component: %v", err)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}
}

func process(doc string, flatten bool) error {
	text, err := codec.Unmarshal([]byte(doc))
	if err != nil {
		return err
	}

	if flatten {
		fmt.Println(mctext.Plain(text))
		return nil
	}

	canonical, err := codec.Marshal(text)
	if err != nil {
		return err
	}

	fmt.Printf("%s\t%s\n", mctext.Plain(text), canonical)
	return nil
}
