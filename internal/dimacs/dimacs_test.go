package dimacs_test

import (
	"bytes"
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/PizzaGenius228/SAT-Solver/internal/dimacs"
	"github.com/PizzaGenius228/SAT-Solver/pkg/cnf"
)

func TestDimacs(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Dimacs Suite")
}

var _ = Describe("Parse", func() {
	It("should fail if there is no header", func() {
		problem := "1 2 3 0\n"
		_, err := dimacs.Parse(strings.NewReader(problem))
		Expect(err).To(HaveOccurred())
	})
	It("should fail if the clause count does not match the header", func() {
		problem := "p cnf 3 3\n1 2 3 0\n"
		_, err := dimacs.Parse(strings.NewReader(problem))
		Expect(err).To(HaveOccurred())
	})
	It("should fail on a literal outside the declared range", func() {
		problem := "p cnf 2 1\n1 3 0\n"
		_, err := dimacs.Parse(strings.NewReader(problem))
		Expect(err).To(HaveOccurred())
	})
	It("should fail on a clause that does not end with 0", func() {
		problem := "p cnf 3 1\n1 2 3\n"
		_, err := dimacs.Parse(strings.NewReader(problem))
		Expect(err).To(HaveOccurred())
	})
	It("should fail on an unknown command", func() {
		problem := "p cnf 3 1\nq 1 2 3 0\n"
		_, err := dimacs.Parse(strings.NewReader(problem))
		Expect(err).To(HaveOccurred())
	})
	It("should parse valid dimacs", func() {
		problem := "c a comment\np cnf 3 2\n1 2 3 0\n-1 -2 0\n"
		f, err := dimacs.Parse(strings.NewReader(problem))
		Expect(err).ToNot(HaveOccurred())
		Expect(f.NumVars()).To(Equal(3))
		Expect(f.Clauses()).To(Equal([]cnf.Clause{{1, 2, 3}, {-1, -2}}))
	})
	It("should parse an empty clause", func() {
		problem := "p cnf 1 1\n0\n"
		f, err := dimacs.Parse(strings.NewReader(problem))
		Expect(err).ToNot(HaveOccurred())
		Expect(f.Clauses()).To(Equal([]cnf.Clause{{}}))
	})
	It("should parse a final line without a newline", func() {
		problem := "p cnf 2 1\n1 -2 0"
		f, err := dimacs.Parse(strings.NewReader(problem))
		Expect(err).ToNot(HaveOccurred())
		Expect(f.Clauses()).To(Equal([]cnf.Clause{{1, -2}}))
	})
})

var _ = Describe("Write", func() {
	It("should round-trip a formula through the dimacs format", func() {
		f, err := cnf.New(3, []cnf.Clause{{1, -2}, {2, 3}})
		Expect(err).ToNot(HaveOccurred())

		var buf bytes.Buffer
		Expect(dimacs.Write(&buf, f)).To(Succeed())
		Expect(buf.String()).To(Equal("p cnf 3 2\n1 -2 0\n2 3 0\n"))

		parsed, err := dimacs.Parse(&buf)
		Expect(err).ToNot(HaveOccurred())
		Expect(parsed.NumVars()).To(Equal(f.NumVars()))
		Expect(parsed.Clauses()).To(Equal(f.Clauses()))
	})
})
