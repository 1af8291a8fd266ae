package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

// The full set of diagnostic kinds reported by the parser, in a fixed order
// so that kind values remain stable across regeneration.
var kinds = []diagSpec{
	{"ExpectedDeclaration", "expected 'sil' declaration", "Error"},
	{"ExpectedLinkage", "expected SIL linkage or function name", "Error"},
	{"ExpectedFunctionName", "expected SIL function name", "Error"},
	{"ExpectedType", "expected SIL type", "Error"},
	{"ExpectedAttributeName", "expected identifier in SIL type attribute list", "Error"},
	{"UnknownAttribute", "unknown SIL type attribute", "Error"},
	{"MalformedUncurryAttribute", "malformed sil_uncurry attribute", "Error"},
	{"ExpectedAttributeBracket", "expected ']' in SIL type attribute list", "Error"},
	{"ExpectedColonInOperand", "expected ':' in SIL typed value reference", "Error"},
	{"ExpectedValueName", "expected SIL value name", "Error"},
	{"ExpectedInstructionName", "expected SIL instruction name", "Error"},
	{"InstructionNotAtLineStart", "SIL instructions must be at the start of a line", "Error"},
	{"ExpectedEqualsInInstruction", "expected '=' in SIL instruction", "Error"},
	{"ExpectedOpcode", "expected SIL instruction opcode", "Error"},
	{"ExpectedTokenInInstruction", "expected '%s' in %s instruction", "Error"},
	{"ExpectedBlockName", "expected SIL basic block name", "Error"},
	{"ExpectedBlockColon", "expected ':' after SIL basic block name", "Error"},
	{"UndefinedBlockUse", "use of undefined basic block '%s'", "Error"},
	{"BlockRedefinition", "redefinition of basic block '%s'", "Error"},
	{"ExpectedRBrace", "expected '}' at the end of SIL function", "Error"},
	{"ExpectedTypeExpression", "expected type", "Error"},
	{"ExpectedTypeRParen", "expected ')' in tuple type", "Error"},
	{"ExpectedTypeRBracket", "expected ']' in array type", "Error"},
	{"UndeclaredType", "use of undeclared type '%s'", "Error"},
	{"UnexpectedCharacter", "unexpected character '%s'", "Error"},
	{"MatchingOpening", "to match this opening '%s'", "Note"},
}

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2026, "consensys/bavard")

	cfg := diagConfig{Kinds: kinds}

	check(bgen.Generate(cfg, "diag", "templates",
		bavard.Entry{
			File:      "../../pkg/diag/kinds.go",
			Templates: []string{"kinds.go.tmpl"},
		},
	), "generating diagnostic kinds")

	gofmt("../../pkg/diag")
}

type diagSpec struct {
	// Name of the kind constant (e.g. "ExpectedType").
	Name string
	// Message template, in fmt syntax.
	Template string
	// Severity suffix (e.g. "Error" for SeverityError).
	Severity string
}

type diagConfig struct {
	Kinds []diagSpec
}

// Format the generated output in place, echoing the command first.
func gofmt(dir string) {
	cmd := exec.Command("gofmt", "-w", dir)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	//
	fmt.Println("gofmt -w", dir)
	check(cmd.Run(), "formatting generated code")
}

func check(err error, context string) {
	if err == nil {
		return
	}
	//
	if context != "" {
		err = fmt.Errorf("%s: %w", context, err)
	}
	//
	fmt.Println(err)
	os.Exit(1)
}
