package input_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"chronosvg/internal/input"
)

func TestDecodeYAML(t *testing.T) {
	convey.Convey("Given a YAML event list", t, func() {
		data := []byte(`
- date: "2023-01-15"
  time: "09:00"
  text: "kickoff"
- date: "2023-03-10"
  time: "11:15"
  text: "prototype review\nfeedback collected"
`)

		convey.Convey("When decoding", func() {
			events, err := input.DecodeYAML(data)

			convey.Convey("Then all records and embedded breaks come through", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(events, convey.ShouldHaveLength, 2)
				convey.So(events[0].Date, convey.ShouldEqual, "2023-01-15")
				convey.So(events[1].Text, convey.ShouldContainSubstring, "\n")
			})
		})
	})

	convey.Convey("Given malformed YAML", t, func() {
		_, err := input.DecodeYAML([]byte("{not a list"))

		convey.Convey("Then decoding fails", func() {
			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}

func TestDecodeCSV(t *testing.T) {
	convey.Convey("Given CSV data with a mixed-case header", t, func() {
		data := "Date,TIME,Text,Owner\n" +
			"2023-01-15,09:00,kickoff,alice\n" +
			"2023-03-10,11:15,\"prototype review\nfeedback collected\",bob\n"

		convey.Convey("When decoding", func() {
			events, err := input.DecodeCSV(strings.NewReader(data))

			convey.Convey("Then columns map case-insensitively and extras are ignored", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(events, convey.ShouldHaveLength, 2)
				convey.So(events[0].Date, convey.ShouldEqual, "2023-01-15")
				convey.So(events[0].Time, convey.ShouldEqual, "09:00")
				convey.So(events[0].Text, convey.ShouldEqual, "kickoff")
			})

			convey.Convey("Then quoted newlines survive as paragraph breaks", func() {
				convey.So(events[1].Text, convey.ShouldEqual, "prototype review\nfeedback collected")
			})
		})
	})

	convey.Convey("Given CSV data without a date column", t, func() {
		_, err := input.DecodeCSV(strings.NewReader("when,text\nnow,hi\n"))

		convey.Convey("Then decoding fails with the missing-column sentinel", func() {
			convey.So(err, convey.ShouldNotBeNil)
			convey.So(errors.Is(err, input.ErrMissingColumn), convey.ShouldBeTrue)
		})
	})
}

func TestLoad(t *testing.T) {
	convey.Convey("Given an events file on disk", t, func() {
		dir := t.TempDir()

		convey.Convey("When the extension is .yaml", func() {
			path := filepath.Join(dir, "events.yaml")
			content := "- date: \"2023-01-15\"\n  time: \"09:00\"\n  text: \"kickoff\"\n"
			convey.So(os.WriteFile(path, []byte(content), 0o644), convey.ShouldBeNil)

			events, err := input.Load(path, input.Options{})

			convey.Convey("Then the YAML decoder handles it", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(events, convey.ShouldHaveLength, 1)
			})
		})

		convey.Convey("When the extension is .csv", func() {
			path := filepath.Join(dir, "events.csv")
			content := "date,time,text\n2023-01-15,09:00,kickoff\n"
			convey.So(os.WriteFile(path, []byte(content), 0o644), convey.ShouldBeNil)

			events, err := input.Load(path, input.Options{})

			convey.Convey("Then the CSV decoder handles it", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(events, convey.ShouldHaveLength, 1)
			})
		})

		convey.Convey("When the extension is unknown", func() {
			_, err := input.Load(filepath.Join(dir, "events.json"), input.Options{})

			convey.Convey("Then loading fails with the format sentinel", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, input.ErrUnsupportedFormat), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the file is missing", func() {
			_, err := input.Load(filepath.Join(dir, "absent.yaml"), input.Options{})

			convey.Convey("Then the I/O failure is surfaced", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})
	})
}
