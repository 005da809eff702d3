// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/yeetrun/gflags/pkg/gflags"
)

var (
	greeting = gflags.String("greeting", "Hello", "Word to greet with.")
	name     = gflags.String("name", "World", "Who to greet.")
	times    = gflags.Int32("times", 1, "How many greetings to print, or 0 to loop forever.")
	interval = gflags.Double("interval", 2, "Seconds between greetings.")
	shout    = gflags.Bool("shout", false, "Prints the greeting in upper case.")
)

func main() {
	res := gflags.Parse("1.0.0")
	if len(res.Args) > 0 {
		log.Fatalf("unexpected arguments: %q", res.Args)
	}

	msg := fmt.Sprintf("%s, %s!", greeting.Get(), name.Get())
	if shout.Get() {
		msg = strings.ToUpper(msg)
	}
	for i := int32(0); times.Get() == 0 || i < times.Get(); i++ {
		if i > 0 {
			time.Sleep(time.Duration(interval.Get() * float64(time.Second)))
		}
		fmt.Println(msg)
	}
}
