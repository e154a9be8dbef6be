// Package synth builds Terraform JSON documents from nested block calls.
//
// A Session accumulates blocks over any number of resource definitions and
// marshals them into the document shape Terraform expects:
//
//	{
//	    "resource": {
//	        "aws_sqs_queue": {
//	            "queue": {
//	                "name": "messages"
//	            }
//	        }
//	    }
//	}
//
// Blocks are built with nested closures:
//
//	sess.Resource("aws_s3_bucket", "assets", func(b *synth.Block) {
//	    b.Set("bucket", "my-assets")
//	    b.Block("versioning", func(b *synth.Block) {
//	        b.Set("enabled", true)
//	    })
//	})
//
// Attribute values are converted through the cty type system so values set
// from Go code and values decoded from configuration marshal identically.
//
// A Session is not safe for concurrent use; synthesis is synchronous,
// single-threaded document construction.
package synth
