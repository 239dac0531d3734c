package output

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/reglet-dev/colsim/internal/application/dto"
)

// JUnitFormatter formats reports as JUnit XML so sweeps can be consumed by
// CI dashboards: every variant is a test case, invalid variants fail.
type JUnitFormatter struct {
	writer io.Writer
}

// NewJUnitFormatter creates a new JUnit formatter.
func NewJUnitFormatter(w io.Writer) *JUnitFormatter {
	return &JUnitFormatter{
		writer: w,
	}
}

// JUnitTestSuites JUnit XML structures
type JUnitTestSuites struct {
	XMLName    xml.Name         `xml:"testsuites"`
	Name       string           `xml:"name,attr"`
	Tests      int              `xml:"tests,attr"`
	Failures   int              `xml:"failures,attr"`
	Errors     int              `xml:"errors,attr"`
	Time       float64          `xml:"time,attr"`
	TestSuites []JUnitTestSuite `xml:"testsuite"`
}

type JUnitTestSuite struct {
	XMLName   xml.Name        `xml:"testsuite"`
	Name      string          `xml:"name,attr"`
	Tests     int             `xml:"tests,attr"`
	Failures  int             `xml:"failures,attr"`
	Errors    int             `xml:"errors,attr"`
	Time      float64         `xml:"time,attr"`
	TestCases []JUnitTestCase `xml:"testcase"`
}

type JUnitTestCase struct {
	XMLName   xml.Name      `xml:"testcase"`
	Name      string        `xml:"name,attr"`
	ClassName string        `xml:"classname,attr"`
	Time      float64       `xml:"time,attr"`
	Failure   *JUnitFailure `xml:"failure,omitempty"`
	Error     *JUnitError   `xml:"error,omitempty"`
}

type JUnitFailure struct {
	Message string `xml:"message,attr"`
	Content string `xml:",chardata"`
}

type JUnitError struct {
	Message string `xml:"message,attr"`
	Content string `xml:",chardata"`
}

// FormatSimulation writes a single passing test case for the run.
func (f *JUnitFormatter) FormatSimulation(report *dto.SimulationReport) error {
	seconds := float64(report.DurationMS) / 1000
	suite := JUnitTestSuite{
		Name:  report.Name,
		Tests: 1,
		Time:  seconds,
		TestCases: []JUnitTestCase{{
			Name:      report.Phase,
			ClassName: report.Name,
			Time:      seconds,
		}},
	}

	return f.write(JUnitTestSuites{
		Name:       "Column Simulation",
		Tests:      1,
		Time:       seconds,
		TestSuites: []JUnitTestSuite{suite},
	})
}

// FormatSweep writes one test case per sweep variant.
func (f *JUnitFormatter) FormatSweep(report *dto.SweepReport) error {
	suite := JUnitTestSuite{
		Name:  fmt.Sprintf("%s/%s", report.Name, report.Parameter),
		Tests: len(report.Variants),
	}

	for _, v := range report.Variants {
		c := JUnitTestCase{
			Name:      fmt.Sprintf("%s=%g", report.Parameter, v.Value),
			ClassName: report.Name,
		}

		switch {
		case len(v.Violations) > 0:
			suite.Failures++
			c.Failure = &JUnitFailure{
				Message: fmt.Sprintf("%d violation(s)", len(v.Violations)),
				Content: strings.Join(v.Violations, "\n"),
			}
		case v.Error != "":
			suite.Errors++
			c.Error = &JUnitError{
				Message: v.Error,
			}
		}

		suite.TestCases = append(suite.TestCases, c)
	}

	return f.write(JUnitTestSuites{
		Name:       "Column Sweep",
		Tests:      suite.Tests,
		Failures:   suite.Failures,
		Errors:     suite.Errors,
		TestSuites: []JUnitTestSuite{suite},
	})
}

func (f *JUnitFormatter) write(suites JUnitTestSuites) error {
	_, err := f.writer.Write([]byte(xml.Header))
	if err != nil {
		return err
	}

	encoder := xml.NewEncoder(f.writer)
	encoder.Indent("", "  ")
	if err := encoder.Encode(suites); err != nil {
		return err
	}

	_, err = f.writer.Write([]byte("\n"))
	return err
}
