package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Friedrichqi/hlschedule/dfg"
	"github.com/Friedrichqi/hlschedule/scheduler"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatalln(os.Args[0] + " </path/to/graph.json>")
	}

	doc, err := dfg.Load(os.Args[1])
	if err != nil {
		log.Fatalln(err)
	}

	latency, err := scheduler.Schedule(doc.Graph, doc.Ops, doc.ClockPeriod)
	if err != nil {
		log.Fatalln(err)
	}

	fmt.Println(latency)
}
