package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/PizzaGenius228/SAT-Solver/pkg/cnf"
)

var (
	commentLine = regexp.MustCompile(`^c\s*.*`)
	headerLine  = regexp.MustCompile(`^p cnf\s+\d+\s+\d+\s*`)
	clauseLine  = regexp.MustCompile(`^(-?\d+\s+)*0$`)
	cleanInput  = regexp.MustCompile(`\s\s+`)
)

// Parse reads a CNF problem in DIMACS format
// see: https://logic.pdmi.ras.ru/~basolver/dimacs.html
//
// Comment lines start with 'c', the header is 'p cnf <variables> <clauses>',
// and each clause is a whitespace-separated list of non-zero literals
// terminated by 0.
func Parse(r io.Reader) (*cnf.Formula, error) {
	reader := bufio.NewReader(r)

	numVariables := 0
	numClauses := 0
	var clauses []cnf.Clause

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("error reading dimacs data: %w", err)
			}
			if line == "" {
				break
			}
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// ignore comments
		if commentLine.MatchString(line) {
			continue
		}

		// parse header
		if headerLine.MatchString(line) {
			line = cleanInput.ReplaceAllString(line, " ")
			problem := strings.Split(line, " ")
			if len(problem) != 4 {
				return nil, fmt.Errorf("invalid statement: (%s). Valid format is p cnf <variables> <clauses>", line)
			}
			numVariables, err = strconv.Atoi(problem[2])
			if err != nil {
				return nil, fmt.Errorf("invalid number (%s) in statement (%s)", problem[2], line)
			}
			numClauses, err = strconv.Atoi(problem[3])
			if err != nil {
				return nil, fmt.Errorf("invalid number (%s) in statement (%s)", problem[3], line)
			}
			clauses = make([]cnf.Clause, 0, numClauses)

			// parse next line
			continue
		}

		// collect clauses
		if clauseLine.MatchString(line) {
			if clauses == nil {
				return nil, fmt.Errorf("invalid dimacs format: missing header 'p cnf <variables> <clauses>'")
			}
			line = cleanInput.ReplaceAllString(line, " ")
			tokens := strings.Split(line, " ")
			if tokens[len(tokens)-1] != "0" {
				return nil, fmt.Errorf("invalid clause (%s): does not end with 0", line)
			}
			tokens = tokens[:len(tokens)-1]
			clause, err := parseClause(tokens, numVariables)
			if err != nil {
				return nil, fmt.Errorf("invalid clause (%s): %w", line, err)
			}
			clauses = append(clauses, clause)

			// parse next line
			continue
		}

		// error out if the instruction is invalid
		return nil, fmt.Errorf("invalid dimacs command: %s", line)
	}

	if clauses == nil {
		return nil, fmt.Errorf("invalid format: no header found")
	}
	if len(clauses) != numClauses {
		return nil, fmt.Errorf("invalid format: number of clauses in header differ from the total number of clauses")
	}

	return cnf.New(numVariables, clauses)
}

func parseClause(tokens []string, numVariables int) (cnf.Clause, error) {
	clause := make(cnf.Clause, 0, len(tokens))
	for _, token := range tokens {
		lit, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("%s is not a number", token)
		}
		if lit == 0 {
			return nil, fmt.Errorf("0 is not a valid literal")
		}
		if lit > numVariables || lit < -numVariables {
			return nil, fmt.Errorf("%s is not a valid literal", token)
		}
		clause = append(clause, cnf.Lit(lit))
	}
	return clause, nil
}

// Write emits the formula in DIMACS format: header line followed by one
// zero-terminated clause per line.
func Write(w io.Writer, f *cnf.Formula) error {
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", f.NumVars(), f.NumClauses()); err != nil {
		return err
	}
	for _, clause := range f.Clauses() {
		for _, lit := range clause {
			if _, err := fmt.Fprintf(w, "%d ", int(lit)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "0"); err != nil {
			return err
		}
	}
	return nil
}
