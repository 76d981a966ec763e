package book_test

import (
	"testing"

	"github.com/dvogt23/book-summary/internal/book"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		name     string
		rawName  string
		expected string
	}{
		{name: "ordering prefix dash", rawName: "1-chapter_1", expected: "Chapter 1"},
		{name: "ordering prefix underscore", rawName: "3_intro", expected: "Intro"},
		{name: "numeric suffix word", rawName: "chapter_23", expected: "Chapter 23"},
		{name: "camel case preserved", rawName: "WritingIsGood", expected: "WritingIsGood"},
		{name: "underscores become spaces", rawName: "First_part_of_part_2", expected: "First Part Of Part 2"},
		{name: "plain lowercase", rawName: "file1", expected: "File1"},
		{name: "unicode first letter", rawName: "über_uns", expected: "Über Uns"},
		{name: "empty", rawName: "", expected: ""},
		{name: "digits only", rawName: "42", expected: ""},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			result := book.TitleCase(testCase.rawName)
			if result != testCase.expected {
				t.Fatalf("expected %q, got %q", testCase.expected, result)
			}
		})
	}
}
