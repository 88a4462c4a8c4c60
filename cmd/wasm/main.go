//go:build js && wasm

// Command wasm is the foreign-function byte-buffer wrapper §6 and §9
// describe: a JS-callable entry point that accepts a puzzle as JSON and
// returns a length-prefixed JSON response. Unlike the source this was
// distilled from, which kept one package-level shared buffer reused
// across calls, every call here allocates its own response buffer —
// the redesign the design notes call for.
package main

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"syscall/js"

	"variantsudoku/internal/driver"
	"variantsudoku/internal/engine"
	"variantsudoku/internal/model"
	"variantsudoku/pkg/constants"
)

// request is the JSON envelope solveFacts expects: the puzzle plus the
// solver tuning knobs.
type request struct {
	Puzzle model.Puzzle        `json:"puzzle"`
	Config engine.SolverConfig `json:"config"`
}

// response mirrors model.IrrefutableFacts but also distinguishes "the
// engine ran and found no solution" from "the engine failed", since
// JSON has no way to represent an absent struct alongside an error
// string in the same shape.
type response struct {
	Satisfiable bool        `json:"satisfiable"`
	Decided     [][]int     `json:"decidedNumbers,omitempty"`
	Candidates  [][][]bool  `json:"candidates,omitempty"`
	Error       string      `json:"error,omitempty"`
}

// solveFacts is exported to JS as VariantSudokuWasm.solveFacts(json) and
// returns a Uint8Array: a 4-byte little-endian length prefix followed by
// the UTF-8 JSON response body.
func solveFacts(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return lengthPrefixed(mustMarshal(response{Error: "puzzle json required"}))
	}

	var req request
	if err := json.Unmarshal([]byte(args[0].String()), &req); err != nil {
		return lengthPrefixed(mustMarshal(response{Error: "invalid json: " + err.Error()}))
	}

	facts, err := solve(req)
	if err != nil {
		return lengthPrefixed(mustMarshal(response{Error: err.Error()}))
	}
	if facts == nil {
		return lengthPrefixed(mustMarshal(response{Satisfiable: false}))
	}
	return lengthPrefixed(mustMarshal(response{
		Satisfiable: true,
		Decided:     facts.DecidedNumbers,
		Candidates:  facts.Candidates,
	}))
}

// solve recovers from the panics internal/model.Validate raises on a
// malformed puzzle, turning them into an ordinary error: the JS caller
// is an untrusted boundary, unlike the core's own callers.
func solve(req request) (facts *model.IrrefutableFacts, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &malformedPuzzleError{r}
		}
	}()
	return driver.Solve(context.Background(), &req.Puzzle, req.Config)
}

type malformedPuzzleError struct{ reason interface{} }

func (e *malformedPuzzleError) Error() string {
	return "malformed puzzle: " + toString(e.reason)
}

func toString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	if err, ok := v.(error); ok {
		return err.Error()
	}
	return "unknown error"
}

func mustMarshal(v interface{}) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		// Only reachable if response itself can't marshal, which it always can.
		return []byte(`{"error":"internal marshal failure"}`)
	}
	return data
}

// lengthPrefixed allocates a fresh buffer for this call only: a 4-byte
// little-endian length prefix followed by data, copied into a new
// Uint8Array the JS side owns.
func lengthPrefixed(data []byte) js.Value {
	buf := make([]byte, 4+len(data))
	binary.LittleEndian.PutUint32(buf[:4], uint32(len(data)))
	copy(buf[4:], data)

	arr := js.Global().Get("Uint8Array").New(len(buf))
	js.CopyBytesToJS(arr, buf)
	return arr
}

func getVersion(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(constants.APIVersion)
}

func main() {
	exports := map[string]interface{}{
		"solveFacts": js.FuncOf(solveFacts),
		"getVersion": js.FuncOf(getVersion),
	}
	js.Global().Set("VariantSudokuWasm", js.ValueOf(exports))
	js.Global().Call("dispatchEvent", js.Global().Get("CustomEvent").New("wasmReady"))

	select {}
}
