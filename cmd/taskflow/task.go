package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/fentz26/taskflow/internal/filter"
	"github.com/fentz26/taskflow/internal/models"
	"github.com/spf13/cobra"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
}

var taskAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new task",
	RunE:  runTaskAdd,
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE:  runTaskList,
}

var taskShowCmd = &cobra.Command{
	Use:   "show [task-id]",
	Short: "Show task details",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskShow,
}

var taskUpdateCmd = &cobra.Command{
	Use:   "update [task-id]",
	Short: "Update task fields",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskUpdate,
}

var taskDeleteCmd = &cobra.Command{
	Use:   "delete [task-id]",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskDelete,
}

var taskToggleCmd = &cobra.Command{
	Use:   "toggle [task-id]",
	Short: "Mark a task completed, or reopen a completed one",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskToggle,
}

var (
	taskTitle    string
	taskDesc     string
	taskDeadline string
	taskPriority string
	taskStatus   string

	listSort     string
	listSearch   string
	listPriority string
	listStatus   string
)

func init() {
	taskCmd.AddCommand(taskAddCmd, taskListCmd, taskShowCmd, taskUpdateCmd, taskDeleteCmd, taskToggleCmd)

	taskAddCmd.Flags().StringVar(&taskTitle, "title", "", "Task title (required)")
	taskAddCmd.Flags().StringVar(&taskDesc, "desc", "", "Task description")
	taskAddCmd.Flags().StringVar(&taskDeadline, "deadline", "", "Deadline as YYYY-MM-DD or RFC 3339 (required)")
	taskAddCmd.Flags().StringVar(&taskPriority, "priority", "medium", "Priority (high, medium, low)")
	taskAddCmd.Flags().StringVar(&taskStatus, "status", "pending", "Status (pending, in_progress, completed)")
	taskAddCmd.MarkFlagRequired("title")
	taskAddCmd.MarkFlagRequired("deadline")

	taskUpdateCmd.Flags().StringVar(&taskTitle, "title", "", "New title")
	taskUpdateCmd.Flags().StringVar(&taskDesc, "desc", "", "New description")
	taskUpdateCmd.Flags().StringVar(&taskDeadline, "deadline", "", "New deadline")
	taskUpdateCmd.Flags().StringVar(&taskPriority, "priority", "", "New priority")
	taskUpdateCmd.Flags().StringVar(&taskStatus, "status", "", "New status")

	taskListCmd.Flags().StringVar(&listSort, "sort", "", "Sort strategy for this listing (priority, deadline, status, created)")
	taskListCmd.Flags().StringVar(&listSearch, "q", "", "Search title and description")
	taskListCmd.Flags().StringVar(&listPriority, "priority", "", "Filter by priority")
	taskListCmd.Flags().StringVar(&listStatus, "status", "", "Filter by status")
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	priority, err := models.ParsePriority(taskPriority)
	if err != nil {
		return err
	}
	status, err := models.ParseStatus(taskStatus)
	if err != nil {
		return err
	}

	in := models.TaskInput{
		Title:       taskTitle,
		Description: taskDesc,
		Deadline:    taskDeadline,
		Priority:    priority,
		Status:      status,
	}

	resp, err := apiPost("/tasks", in)
	if err != nil {
		return err
	}

	var task models.Task
	if err := json.Unmarshal(resp, &task); err != nil {
		return err
	}

	fmt.Printf("Created task: %s\n", task.ID)
	return nil
}

func runTaskList(cmd *cobra.Command, args []string) error {
	var f filter.Filter
	f.Search = listSearch
	if listPriority != "" && listPriority != "all" {
		p, err := models.ParsePriority(listPriority)
		if err != nil {
			return err
		}
		f.Priority = p
	}
	if listStatus != "" && listStatus != "all" {
		st, err := models.ParseStatus(listStatus)
		if err != nil {
			return err
		}
		f.Status = st
	}

	q := f.Query()
	if listSort != "" {
		q.Set("sort", listSort)
	}
	url := "/tasks"
	if len(q) > 0 {
		url += "?" + q.Encode()
	}

	var tasks []models.Task
	if err := apiGetJSON(url, &tasks); err != nil {
		return err
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	writeTaskTable(os.Stdout, tasks, time.Now())
	return nil
}

// writeTaskTable prints tasks with their full ids, so any listed id can be
// passed to show, update, delete or toggle.
func writeTaskTable(out io.Writer, tasks []models.Task, now time.Time) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tPRIORITY\tSTATUS\tDEADLINE")
	for _, t := range tasks {
		deadline := formatDeadline(t.Deadline)
		if t.Overdue(now) {
			deadline += " (overdue)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			t.ID,
			truncate(t.Title, 40),
			t.Priority.Label(),
			t.Status.Label(),
			deadline,
		)
	}
	w.Flush()
}

func runTaskShow(cmd *cobra.Command, args []string) error {
	var task models.Task
	if err := apiGetJSON("/tasks/"+args[0], &task); err != nil {
		return err
	}
	printTask(task)
	return nil
}

func runTaskUpdate(cmd *cobra.Command, args []string) error {
	var patch models.TaskPatch
	flags := cmd.Flags()
	if flags.Changed("title") {
		patch.Title = &taskTitle
	}
	if flags.Changed("desc") {
		patch.Description = &taskDesc
	}
	if flags.Changed("deadline") {
		patch.Deadline = &taskDeadline
	}
	if flags.Changed("priority") {
		p, err := models.ParsePriority(taskPriority)
		if err != nil {
			return err
		}
		patch.Priority = &p
	}
	if flags.Changed("status") {
		st, err := models.ParseStatus(taskStatus)
		if err != nil {
			return err
		}
		patch.Status = &st
	}
	if patch.Empty() {
		return fmt.Errorf("nothing to update: pass at least one of --title, --desc, --deadline, --priority, --status")
	}

	resp, err := apiPut("/tasks/"+args[0], patch)
	if err != nil {
		return err
	}

	var task models.Task
	if err := json.Unmarshal(resp, &task); err != nil {
		return err
	}
	fmt.Printf("Updated task %s\n", task.ID)
	return nil
}

func runTaskDelete(cmd *cobra.Command, args []string) error {
	if err := apiDelete("/tasks/" + args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted task %s\n", args[0])
	return nil
}

func runTaskToggle(cmd *cobra.Command, args []string) error {
	resp, err := apiPost("/tasks/"+args[0]+"/toggle", nil)
	if err != nil {
		return err
	}

	var task models.Task
	if err := json.Unmarshal(resp, &task); err != nil {
		return err
	}
	fmt.Printf("Task %s is now %s\n", task.ID, task.Status.Label())
	return nil
}

func printTask(t models.Task) {
	fmt.Printf("ID:          %s\n", t.ID)
	fmt.Printf("Title:       %s\n", t.Title)
	fmt.Printf("Description: %s\n", t.Description)
	if t.Overdue(time.Now()) {
		fmt.Printf("Deadline:    %s (overdue)\n", formatDeadline(t.Deadline))
	} else {
		fmt.Printf("Deadline:    %s\n", formatDeadline(t.Deadline))
	}
	fmt.Printf("Priority:    %s\n", t.Priority.Label())
	fmt.Printf("Status:      %s\n", t.Status.Label())
	fmt.Printf("Created:     %s\n", t.CreatedAt.Local().Format("2006-01-02 15:04"))
}

// --- Helpers ---

// formatDeadline shows a deadline as a date, falling back to the raw value.
func formatDeadline(s string) string {
	d, err := models.ParseDeadline(s)
	if err != nil {
		return s
	}
	return d.Format("2006-01-02")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
