// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

// Command treediff computes an AST-aware edit script between a
// sequence's before/after source and AST files and writes it as JSON.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-treediff/treediff"
)

func main() {
	var (
		output     = flag.String("o", "", "output path (default stdout)")
		hashRounds = flag.Int("hash-rounds", 10, "number of NodeSketcher rounds (S)")
		commit     = flag.Bool("commit", false, "attach an IPA commitment to each side's supersketches")
		workers    = flag.Int("workers", 0, "goroutine bound for distance-round hashing (0 = GOMAXPROCS)")
		fileRole   = flag.Uint("file-role", 0, "role tag value the writer treats as FILE and excludes")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <sequence-prefix>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	prefix := flag.Arg(0)

	opts := treediff.Options{
		HashRounds: *hashRounds,
		OutputPath: *output,
		Commit:     *commit,
		Workers:    *workers,
		FileRole:   uint32(*fileRole),
	}

	if err := run(prefix, opts); err != nil {
		log.Fatal(err)
	}
}

func run(prefix string, opts treediff.Options) error {
	files, err := treediff.LocateSequenceFiles(prefix)
	if err != nil {
		return err
	}

	beforeBlob, err := os.ReadFile(files.BeforeAST)
	if err != nil {
		return err
	}
	afterBlob, err := os.ReadFile(files.AfterAST)
	if err != nil {
		return err
	}
	beforeSrcBytes, err := os.ReadFile(files.BeforeSrc)
	if err != nil {
		return err
	}
	afterSrcBytes, err := os.ReadFile(files.AfterSrc)
	if err != nil {
		return err
	}

	rootBefore, nlinesBefore, err := treediff.DecodeAST(beforeBlob)
	if err != nil {
		return err
	}
	rootAfter, nlinesAfter, err := treediff.DecodeAST(afterBlob)
	if err != nil {
		return err
	}

	treeBefore := treediff.Index(rootBefore, nlinesBefore)
	treeAfter := treediff.Index(rootAfter, nlinesAfter)

	ops, commitments, err := treediff.Diff(context.Background(), string(beforeSrcBytes), treeBefore, string(afterSrcBytes), treeAfter, opts)
	if err != nil {
		return err
	}

	out := os.Stdout
	if opts.OutputPath != "" {
		f, err := os.Create(opts.OutputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	return treediff.WriteScript(out, string(beforeSrcBytes), string(afterSrcBytes), ops, opts.FileRole, commitments)
}
