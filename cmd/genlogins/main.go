// Command genlogins writes a corpus of unique login names, sorted one per
// line, for the logincheck benchmark to load.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/kwertop/logincheck/logins"
)

func main() {
	var countFlag = flag.Int("count", 1000000, "number of unique logins to generate")
	var outFlag = flag.String("o", "logins.txt", "output file")
	var seedFlag = flag.Int64("seed", 0, "random seed (0 seeds from the clock)")
	flag.Parse()

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	generator := logins.NewGenerator(seed)
	corpus := generator.GenerateUnique(*countFlag)
	if err := logins.WriteFile(*outFlag, corpus); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Generated %d unique logins to %s\n", len(corpus), *outFlag)
}
