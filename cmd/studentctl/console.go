package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/stemsi/student-admin/internal/model"
	"github.com/stemsi/student-admin/internal/service"
	"github.com/stemsi/student-admin/internal/view"
)

const helpText = `Commands:
  students              list students
  show <id>             show a student with enrolled and available courses
  enroll <courseId>     enroll the shown student in a course
  unenroll <courseId>   remove the shown student from a course
  add                   create a student
  edit <id>             edit a student
  delete <id>           delete a student
  courses               list courses
  add-course <name>     create a course
  help                  show this help
  quit                  exit`

// console drives the views from a line-oriented prompt.
type console struct {
	in  *bufio.Reader
	out io.Writer

	students *service.StudentService
	courses  *service.CourseService

	list   *view.StudentListView
	detail *view.StudentDetailView

	// interactive is true when stdin is a terminal; deletes then prompt.
	interactive bool
	assumeYes   bool
}

func newConsole(in io.Reader, out io.Writer, students *service.StudentService, courses *service.CourseService) *console {
	return &console{
		in:       bufio.NewReader(in),
		out:      out,
		students: students,
		courses:  courses,
	}
}

// Run reads commands until quit or end of input.
func (c *console) Run(ctx context.Context) error {
	c.list = view.NewStudentListView(c.students)
	defer c.list.Close()

	fmt.Fprintln(c.out, "=== Student Admin ===")
	if err := c.list.Refresh(ctx); err != nil {
		c.failed("Error loading students", err)
	}

	for {
		if ctx.Err() != nil {
			return nil
		}
		fmt.Fprint(c.out, "> ")
		line, err := c.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if line = strings.TrimSpace(line); line != "" {
			if quit := c.execute(ctx, line); quit {
				return nil
			}
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(c.out)
			return nil
		}
	}
}

func (c *console) execute(ctx context.Context, line string) bool {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "students":
		c.showStudents(ctx)
	case "show":
		if id, ok := c.parseID(arg); ok {
			c.showStudent(ctx, id)
		}
	case "enroll", "unenroll":
		if id, ok := c.parseID(arg); ok {
			c.changeEnrollment(ctx, cmd, id)
		}
	case "add":
		c.openForm(ctx, nil)
	case "edit":
		if id, ok := c.parseID(arg); ok {
			c.editStudent(ctx, id)
		}
	case "delete":
		if id, ok := c.parseID(arg); ok {
			c.deleteStudent(ctx, id)
		}
	case "courses":
		c.showCourses(ctx)
	case "add-course":
		c.addCourse(ctx, arg)
	case "help":
		fmt.Fprintln(c.out, helpText)
	case "quit", "exit":
		return true
	default:
		fmt.Fprintf(c.out, "Unknown command %q. Type help for a list.\n", cmd)
	}
	return false
}

func (c *console) showStudents(ctx context.Context) {
	if err := c.list.Refresh(ctx); err != nil {
		c.failed("Error loading students", err)
	}
	students := c.list.Students()
	if len(students) == 0 {
		fmt.Fprintln(c.out, "No students.")
		return
	}
	for _, s := range students {
		fmt.Fprintf(c.out, "%4d  %-24s %s\n", s.ID, s.FullName(), s.Email)
	}
}

func (c *console) showStudent(ctx context.Context, id int64) {
	c.detail = view.NewStudentDetailView(c.students, c.courses)
	err := c.detail.Load(ctx, id)
	switch {
	case c.detail.LoadingStudent():
		c.failed("Error loading student", err)
		c.detail = nil
		return
	case c.detail.LoadingCourses():
		c.failed("Error loading courses", err)
	}
	c.renderDetail()
}

func (c *console) renderDetail() {
	s := c.detail.Student()
	fmt.Fprintf(c.out, "%s <%s> (id %d)\n", s.FullName(), s.Email, s.ID)
	fmt.Fprintln(c.out, "Enrolled:")
	printCourses(c.out, c.detail.Enrolled())
	if c.detail.LoadingCourses() {
		return
	}
	fmt.Fprintln(c.out, "Available:")
	printCourses(c.out, c.detail.Available())
}

func (c *console) changeEnrollment(ctx context.Context, cmd string, courseID int64) {
	if c.detail == nil {
		fmt.Fprintln(c.out, "No student shown. Use show <id> first.")
		return
	}
	course, ok := c.detail.FindCourse(courseID)
	if !ok {
		fmt.Fprintf(c.out, "Course %d is not in the catalog.\n", courseID)
		return
	}

	var err error
	if cmd == "enroll" {
		err = c.detail.Enroll(ctx, course)
	} else {
		err = c.detail.Unenroll(ctx, course)
	}
	if err != nil {
		c.failed("Error updating enrollment", err)
		return
	}
	c.renderDetail()
}

func (c *console) editStudent(ctx context.Context, id int64) {
	existing, ok := c.list.Find(id)
	if !ok {
		// Not in the shown list yet; fetch it directly.
		s, err := c.students.GetStudentByID(ctx, id)
		if err != nil {
			c.failed("Error loading student", err)
			return
		}
		existing = s
	}
	c.openForm(ctx, existing)
}

// openForm prompts for each field, keeping the current value on an empty
// answer in edit mode, and re-prompts until the values validate.
func (c *console) openForm(ctx context.Context, existing *model.Student) {
	form := view.NewStudentForm(c.students, existing)
	if form.EditMode() {
		fmt.Fprintln(c.out, "Edit Student (empty keeps the current value)")
	} else {
		fmt.Fprintln(c.out, "Add Student")
	}

	for {
		form.Values.FirstName = c.prompt("First Name", form.Values.FirstName)
		form.Values.LastName = c.prompt("Last Name", form.Values.LastName)
		form.Values.Email = c.prompt("Email", form.Values.Email)

		if form.Validate() {
			break
		}
		printErrors(c.out, form.Errors())
		if !c.ask("Try again?") {
			return
		}
	}

	saved, err := form.Submit(ctx)
	if err != nil {
		c.failed("Error saving student", err)
		return
	}
	if err := c.list.AfterFormClosed(ctx, saved); err != nil {
		c.failed("Error loading students", err)
	}
	fmt.Fprintf(c.out, "Saved %s (id %d).\n", form.Saved().FullName(), form.Saved().ID)
}

func (c *console) deleteStudent(ctx context.Context, id int64) {
	var confirm view.Confirmer
	switch {
	case c.assumeYes:
	case c.interactive:
		confirm = c.ask
	default:
		fmt.Fprintln(c.out, "Refusing to delete without a terminal; rerun with -y.")
		return
	}

	deleted, err := c.list.Delete(ctx, id, confirm)
	switch {
	case !deleted && err != nil:
		c.failed("Error deleting student", err)
	case !deleted:
		fmt.Fprintln(c.out, "Cancelled.")
	default:
		if err != nil {
			c.failed("Error loading students", err)
		}
		fmt.Fprintf(c.out, "Deleted student %d.\n", id)
	}
}

func (c *console) showCourses(ctx context.Context) {
	courses := view.NewCourseListView(c.courses)
	if err := courses.Load(ctx); err != nil {
		c.failed("Error loading courses", err)
		return
	}
	printCourses(c.out, courses.Courses())
}

func (c *console) addCourse(ctx context.Context, name string) {
	courses := view.NewCourseListView(c.courses)
	courses.Name = name
	added, err := courses.AddCourse(ctx)
	switch {
	case err != nil && !added:
		c.failed("Error creating course", err)
	case !added:
		fmt.Fprintln(c.out, "Usage: add-course <name>")
	default:
		if err != nil {
			c.failed("Error loading courses", err)
			return
		}
		printCourses(c.out, courses.Courses())
	}
}

func (c *console) prompt(label, current string) string {
	if current != "" {
		fmt.Fprintf(c.out, "%s [%s]: ", label, current)
	} else {
		fmt.Fprintf(c.out, "%s: ", label)
	}
	line, _ := c.in.ReadString('\n')
	if line = strings.TrimSpace(line); line != "" {
		return line
	}
	return current
}

func (c *console) ask(question string) bool {
	fmt.Fprintf(c.out, "%s [y/N]: ", question)
	line, _ := c.in.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func (c *console) parseID(arg string) (int64, bool) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		fmt.Fprintln(c.out, "Expected a positive numeric id.")
		return 0, false
	}
	return id, true
}

// failed prints a short message; the cause is already in the log.
func (c *console) failed(msg string, err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(c.out, msg+".")
}

func printCourses(out io.Writer, courses []model.Course) {
	if len(courses) == 0 {
		fmt.Fprintln(out, "  (none)")
		return
	}
	for _, co := range courses {
		fmt.Fprintf(out, "  %4d  %s\n", co.ID, co.Name)
	}
}

func printErrors(out io.Writer, fields map[string]string) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(out, "  %s\n", fields[k])
	}
}
