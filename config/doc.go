// Package config loads project configuration from .hcl files and
// synthesizes it into a Terraform document.
//
// A typical config file looks something like this:
//
//	project "example" {
//	  region = "eu-west-1"
//	}
//
//	resource "queue" {
//	  type = "aws_sqs_queue"
//	  name = "jobs"
//	}
//
//	resource "worker" {
//	  type = "aws_lambda_function"
//
//	  function_name = "worker"
//	  handler       = "index.handler"
//	  runtime       = "go1.x"
//	  role          = role.arn     # reference to another resource
//	  s3_bucket     = "artifacts"
//	  s3_key        = "worker.zip"
//	}
//
// Except for type, the body of a resource block is decoded against the
// attribute schema of the resource type. Attributes may reference another
// resource by its configured name; references become Terraform
// interpolations in the synthesized document and determine the order
// resources are synthesized in.
package config
