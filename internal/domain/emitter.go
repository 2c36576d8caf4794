package domain

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	m "runnergen.dev/pkg/runnergen/internal/model"
)

// RunTestRenderer renders the run_test boilerplate for the given options.
type RunTestRenderer func(opts m.Options) (string, error)

var (
	identifierUnsafe = regexp.MustCompile(`[^A-Za-z0-9_]`)
	guardUnsafe      = regexp.MustCompile(`[^A-Za-z0-9]+`)
	definedName      = regexp.MustCompile(`\w+`)
)

// Emitter renders scan results into a runner translation unit and header.
type Emitter struct {
	runTest RunTestRenderer
}

// NewEmitter creates an Emitter that renders run_test with renderer.
func NewEmitter(renderer RunTestRenderer) *Emitter {
	return &Emitter{runTest: renderer}
}

// emission accumulates output for one file. Writes to a bytes.Buffer cannot fail.
type emission struct {
	bytes.Buffer
	opts m.Options
}

// puts writes s followed by a newline unless s already ends with one.
func (e *emission) puts(s string) {
	e.WriteString(s)

	if !strings.HasSuffix(s, "\n") {
		e.WriteByte('\n')
	}
}

func (e *emission) putf(format string, args ...any) {
	e.puts(fmt.Sprintf(format, args...))
}

// EmitRunner writes the runner for scan to w. filename is the input file name
// as it should appear in the runner.
func (em *Emitter) EmitRunner(w io.Writer, scan m.Scan, filename string) error {
	out := &emission{opts: scan.Options}

	out.header(scan.Mocks, scan.Includes)
	out.externs(scan.Tests)
	out.mockManagement(scan.Mocks)
	out.setup()
	out.teardown()
	out.suiteSetup()
	out.suiteTeardown()
	out.reset()

	if len(scan.Tests) > 0 {
		runTest, err := em.runTest(scan.Options)
		if err != nil {
			return fmt.Errorf("render run_test: %w", err)
		}

		out.puts("\n" + runTest)
	}

	out.argsWrappers(scan.Tests)
	out.main(filename, scan.Tests, scan.Mocks)

	_, err := w.Write(out.Bytes())

	return err
}

// EmitHeader writes the runner header declaring every test prototype.
func (em *Emitter) EmitHeader(w io.Writer, scan m.Scan, headerPath string) error {
	out := &emission{opts: scan.Options}

	guard := HeaderGuard(headerPath)

	out.puts("/* AUTOGENERATED FILE. DO NOT EDIT. */")
	out.putf("#ifndef %s", guard)
	out.putf("#define %s\n\n", guard)
	out.putf("#include \"%s.h\"", scan.Options.Framework)

	if len(scan.Mocks) > 0 {
		out.puts(`#include "cmock.h"`)
	}

	out.includeLines(scan.Options.Includes)
	out.includeLines(scan.Includes)
	out.puts("\n")

	for _, test := range scan.Tests {
		out.putf("void %s(%s);", test.Name, orVoid(test.FormalParams))
	}

	out.puts("#endif\n\n")

	_, err := w.Write(out.Bytes())

	return err
}

func (e *emission) header(mocks, includes []string) {
	e.puts("/* AUTOGENERATED FILE. DO NOT EDIT. */")
	e.puts("\n/*=======Automagically Detected Files To Include=====*/")

	if e.opts.ExternCIncludes {
		e.puts(`extern "C" {`)
	}

	e.putf("#include \"%s.h\"", e.opts.Framework)

	if len(mocks) > 0 {
		e.puts(`#include "cmock.h"`)
	}

	if e.opts.ExternCIncludes {
		e.puts("}")
	}

	if len(e.opts.Defines) > 0 {
		e.puts("/* injected defines for unity settings, etc */")

		for _, define := range e.opts.Defines {
			name := definedName.FindString(define)
			e.putf("#ifndef %s\n#define %s\n#endif /* %s */", name, define, name)
		}
	}

	if e.opts.HeaderMode() {
		e.putf("#include \"%s\"", filepath.Base(e.opts.HeaderFile))
	} else {
		e.includeLines(e.opts.Includes)
		e.includeLines(includes)
	}

	if e.opts.ExternCIncludes {
		e.puts(`extern "C" {`)
	}

	for _, mock := range mocks {
		e.putf("#include \"%s\"", mock)
	}

	if e.opts.ExternCIncludes {
		e.puts("}")
	}

	if e.opts.HasPlugin(m.PluginCException) {
		e.puts(`#include "CException.h"`)
	}

	if e.opts.EnforceStrictOrdering {
		e.puts("")
		e.puts("int GlobalExpectCount;")
		e.puts("int GlobalVerifyOrder;")
		e.puts("char* GlobalOrderError;")
	}
}

// includeLines writes one #include per distinct non-empty entry. Entries
// already carrying angle brackets are written as-is.
func (e *emission) includeLines(includes []string) {
	seen := make(map[string]struct{}, len(includes))

	for _, inc := range includes {
		if inc == "" {
			continue
		}

		if _, ok := seen[inc]; ok {
			continue
		}

		seen[inc] = struct{}{}

		if strings.Contains(inc, "<") {
			e.putf("#include %s", inc)
		} else {
			e.putf("#include \"%s\"", inc)
		}
	}
}

func (e *emission) externs(tests []m.TestRecord) {
	e.puts("\n/*=======External Functions This Runner Calls=====*/")
	e.putf("extern void %s(void);", e.opts.SetupName)
	e.putf("extern void %s(void);", e.opts.TeardownName)

	if e.opts.ExternC {
		e.puts("\n#ifdef __cplusplus\nextern \"C\"\n{\n#endif")
	}

	for _, test := range tests {
		e.putf("extern void %s(%s);", test.Name, orVoid(test.CallSignature))
	}

	if e.opts.ExternC {
		e.puts("#ifdef __cplusplus\n}\n#endif")
	}

	e.puts("")
}

func (e *emission) mockManagement(mocks []string) {
	names := make([]string, 0, len(mocks))
	for _, mock := range mocks {
		names = append(names, MockName(mock))
	}

	e.puts("\n/*=======Mock Management=====*/")
	e.puts("static void CMock_Init(void)")
	e.puts("{")

	if e.opts.EnforceStrictOrdering {
		e.puts("  GlobalExpectCount = 0;")
		e.puts("  GlobalVerifyOrder = 0;")
		e.puts("  GlobalOrderError = NULL;")
	}

	for _, name := range names {
		e.putf("  %s_Init();", name)
	}

	e.puts("}\n")

	for _, phase := range []string{"Verify", "Destroy"} {
		e.putf("static void CMock_%s(void)", phase)
		e.puts("{")

		for _, name := range names {
			e.putf("  %s_%s();", name, phase)
		}

		e.puts("}\n")
	}
}

func (e *emission) setup() {
	if e.opts.HasSetup {
		return
	}

	e.puts("\n/*=======Setup (stub)=====*/")
	e.putf("void %s(void) {}", e.opts.SetupName)
}

func (e *emission) teardown() {
	if e.opts.HasTeardown {
		return
	}

	e.puts("\n/*=======Teardown (stub)=====*/")
	e.putf("void %s(void) {}", e.opts.TeardownName)
}

func (e *emission) suiteSetup() {
	if e.opts.SuiteSetup == "" {
		return
	}

	e.puts("\n/*=======Suite Setup=====*/")
	e.puts("void suiteSetUp(void)")
	e.puts("{")
	e.puts(e.opts.SuiteSetup)
	e.puts("}")
}

func (e *emission) suiteTeardown() {
	if e.opts.SuiteTeardown == "" {
		return
	}

	e.puts("\n/*=======Suite Teardown=====*/")
	e.puts("int suiteTearDown(int num_failures)")
	e.puts("{")
	e.puts(e.opts.SuiteTeardown)
	e.puts("}")
}

func (e *emission) reset() {
	e.puts("\n/*=======Test Reset Options=====*/")
	e.putf("void %s(void);", e.opts.TestResetName)
	e.putf("void %s(void)", e.opts.TestResetName)
	e.puts("{")
	e.putf("  %s();", e.opts.TeardownName)
	e.puts("  CMock_Verify();")
	e.puts("  CMock_Destroy();")
	e.puts("  CMock_Init();")
	e.putf("  %s();", e.opts.SetupName)
	e.puts("}")
	e.putf("void %s(void);", e.opts.TestVerifyName)
	e.putf("void %s(void)", e.opts.TestVerifyName)
	e.puts("{")
	e.puts("  CMock_Verify();")
	e.puts("}")
}

func (e *emission) argsWrappers(tests []m.TestRecord) {
	if !e.opts.UseParamTests {
		return
	}

	e.puts("\n/*=======Parameterized Test Wrappers=====*/")

	for _, test := range tests {
		for i, args := range test.ParameterSets {
			e.putf("static void %s(void)", WrapperName(test.Name, i))
			e.puts("{")
			e.putf("    %s(%s);", test.Name, args)
			e.puts("}\n")
		}
	}
}

func (e *emission) main(filename string, tests []m.TestRecord, mocks []string) {
	e.puts("\n/*=======MAIN=====*/")

	mainName := e.opts.MainName
	if mainName == m.MainAuto {
		mainName = "main_" + identifierUnsafe.ReplaceAllString(strings.ReplaceAll(filename, ".c", ""), "_")
	}

	if e.opts.CmdlineArgs {
		e.cmdlineMain(mainName, filename, tests)
	} else {
		mainReturn := "int"
		if e.opts.OmitBeginEnd {
			mainReturn = "void"
		}

		if mainName != "main" {
			e.puts(declaration(e.opts.MainExportDecl, mainReturn, mainName+"(void);"))
		}

		e.putf("%s %s(void)", mainReturn, mainName)
		e.puts("{")
	}

	if e.opts.HasSuiteSetup {
		e.puts("  suiteSetUp();")
	}

	if e.opts.OmitBeginEnd {
		e.putf("  UnitySetTestFile(%s);", CString(filename))
	} else {
		e.putf("  UnityBegin(%s);", CString(filename))
	}

	for _, test := range tests {
		if test.DirectCall() || !e.opts.UseParamTests {
			e.putf("  run_test(%s, %s, %d);", test.Name, CString(test.Name), test.Line)
			continue
		}

		for i, args := range test.ParameterSets {
			e.putf("  run_test(%s, %s, %d);", WrapperName(test.Name, i), CString(test.Name+"("+args+")"), test.Line)
		}
	}

	e.puts("")

	if len(mocks) > 0 {
		e.puts("  CMock_Guts_MemFreeFinal();")
	}

	switch {
	case e.opts.HasSuiteTeardown && e.opts.OmitBeginEnd:
		e.puts("  (void) suiteTearDown(0);")
	case e.opts.HasSuiteTeardown:
		e.puts("  return suiteTearDown(UnityEnd());")
	case !e.opts.OmitBeginEnd:
		e.puts("  return UnityEnd();")
	}

	e.puts("}")
}

func (e *emission) cmdlineMain(mainName, filename string, tests []m.TestRecord) {
	signature := mainName + "(int argc, char** argv)"

	if mainName != "main" {
		e.puts(declaration(e.opts.MainExportDecl, "int", signature+";"))
	}

	e.puts(declaration(e.opts.MainExportDecl, "int", signature))
	e.puts("{")
	e.puts("  int parse_status = UnityParseOptions(argc, argv);")
	e.puts("  if (parse_status != 0)")
	e.puts("  {")
	e.puts("    if (parse_status < 0)")
	e.puts("    {")
	e.putf("      UnityPrint(%s);", CString(strings.ReplaceAll(filename, ".c", "")+"."))
	e.puts("      UNITY_PRINT_EOL();")

	for _, test := range tests {
		if test.DirectCall() || !e.opts.UseParamTests {
			e.putf("      UnityPrint(%s);", CString("  "+test.Name))
			e.puts("      UNITY_PRINT_EOL();")

			continue
		}

		for _, args := range test.ParameterSets {
			e.putf("      UnityPrint(%s);", CString("  "+test.Name+"("+args+")"))
			e.puts("      UNITY_PRINT_EOL();")
		}
	}

	e.puts("      return 0;")
	e.puts("    }")
	e.puts("    return parse_status;")
	e.puts("  }")
}

// WrapperName returns the name of the wrapper for the index-th (0-based) parameter set.
func WrapperName(test string, index int) string {
	return fmt.Sprintf("runner_args%d_%s", index+1, test)
}

// MockName turns a mock header path into the identifier prefix of its
// Init/Verify/Destroy functions.
func MockName(header string) string {
	name := baseName(header)
	if ext := filepath.Ext(name); ext != "" {
		name = strings.TrimSuffix(name, ext)
	}

	return identifierUnsafe.ReplaceAllString(name, "_")
}

// HeaderGuard derives the include guard of a generated header from its file name.
func HeaderGuard(headerPath string) string {
	return "_" + strings.ToUpper(guardUnsafe.ReplaceAllString(baseName(headerPath), "_"))
}

// CString quotes s as a C string literal.
func CString(s string) string {
	var b strings.Builder

	b.WriteByte('"')

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 || c == 0x7f {
				fmt.Fprintf(&b, `\%03o`, c)
			} else {
				b.WriteByte(c)
			}
		}
	}

	b.WriteByte('"')

	return b.String()
}

func declaration(exportDecl string, parts ...string) string {
	if exportDecl != "" {
		parts = append([]string{exportDecl}, parts...)
	}

	return strings.Join(parts, " ")
}

func orVoid(params string) string {
	if strings.TrimSpace(params) == "" {
		return "void"
	}

	return params
}
