// Command contact submits a message through the site's contact endpoint,
// with the same validation the page applies.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Zachkp/resume-site/contact"
)

func main() {
	url := flag.String("url", "http://localhost:9080", "site base URL")
	name := flag.String("name", "", "your name")
	email := flag.String("email", "", "your e-mail address")
	message := flag.String("message", "", "message text")
	flag.Parse()

	f := contact.NewForm(contact.NewHTTPSender(*url))
	f.Name, f.Email, f.Message = *name, *email, *message

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	f.Submit(ctx)

	if f.Error != "" {
		log.Printf("[CONTACT] submit to %s failed", *url)
		fmt.Fprintln(os.Stderr, f.Error)
		os.Exit(1)
	}
	fmt.Println("Thanks! Your message has been sent.")
}
